package service

// Each kind exposes its own closed set of metric identifiers. The identifiers
// are the unit of widget configuration: a widget shows one line per selected
// metric, plus a title line.

// VMHostMetric is a metric identifier for virtualization hosts.
type VMHostMetric string

// Virtualization host metrics.
const (
	VMHostCPU         VMHostMetric = "cpu"
	VMHostMemory      VMHostMetric = "memory"
	VMHostStorage     VMHostMetric = "storage"
	VMHostVMs         VMHostMetric = "vms"
	VMHostContainers  VMHostMetric = "containers"
	VMHostUptime      VMHostMetric = "uptime"
	VMHostTemperature VMHostMetric = "temperature"
	VMHostNetIn       VMHostMetric = "netin"
	VMHostNetOut      VMHostMetric = "netout"
	VMHostIOWait      VMHostMetric = "iowait"
)

// MediaMetric is a metric identifier for media servers.
type MediaMetric string

// Media server metrics.
const (
	MediaStreams     MediaMetric = "streams"
	MediaNowPlaying  MediaMetric = "nowplaying"
	MediaTranscoding MediaMetric = "transcoding"
	MediaBandwidth   MediaMetric = "bandwidth"
	MediaMovies      MediaMetric = "movies"
	MediaShows       MediaMetric = "shows"
	MediaSongs       MediaMetric = "songs"
	MediaUsers       MediaMetric = "users"
)

// TorrentMetric is a metric identifier for torrent clients.
type TorrentMetric string

// Torrent client metrics.
const (
	TorrentDownRate  TorrentMetric = "downrate"
	TorrentUpRate    TorrentMetric = "uprate"
	TorrentActive    TorrentMetric = "active"
	TorrentSeeding   TorrentMetric = "seeding"
	TorrentPaused    TorrentMetric = "paused"
	TorrentCompleted TorrentMetric = "completed"
	TorrentRatio     TorrentMetric = "ratio"
)

// DNSFilterMetric is a metric identifier for filtering DNS resolvers.
type DNSFilterMetric string

// DNS filter metrics.
const (
	DNSQueries    DNSFilterMetric = "queries"
	DNSBlocked    DNSFilterMetric = "blocked"
	DNSBlockedPct DNSFilterMetric = "blockedpct"
	DNSClients    DNSFilterMetric = "clients"
	DNSLatency    DNSFilterMetric = "latency"
	DNSUpstreams  DNSFilterMetric = "upstreams"
	DNSRules      DNSFilterMetric = "rules"
)
