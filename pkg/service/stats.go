package service

import (
	"context"
	"time"
)

// =============================================================================
// Stats - Discriminated Union of Poller Payloads
// =============================================================================

// Stats is the typed statistics payload a poller produces for one service.
//
// This is a discriminated union type - check Kind to determine which variant
// field is populated:
//
//	vmhost:    VMHost
//	media:     Media
//	torrent:   Torrent
//	dnsfilter: DNSFilter
//
// The encoding keeps the discriminator first with one side-channel field per
// kind so that persisted payloads stay readable and forward-compatible.
type Stats struct {
	// Discriminator
	Kind Kind `json:"kind" bson:"kind"`

	// Collection timestamp (shared)
	CollectedAt time.Time `json:"collected_at" bson:"collected_at"`

	// Per-kind payloads
	VMHost    *VMHostStats    `json:"vmhost,omitempty" bson:"vmhost,omitempty"`
	Media     *MediaStats     `json:"media,omitempty" bson:"media,omitempty"`
	Torrent   *TorrentStats   `json:"torrent,omitempty" bson:"torrent,omitempty"`
	DNSFilter *DNSFilterStats `json:"dnsfilter,omitempty" bson:"dnsfilter,omitempty"`
}

// VMHostStats holds node statistics from a virtualization host.
type VMHostStats struct {
	CPUPct        float64       `json:"cpu_pct" bson:"cpu_pct"`
	MemUsedBytes  int64         `json:"mem_used_bytes" bson:"mem_used_bytes"`
	MemTotalBytes int64         `json:"mem_total_bytes" bson:"mem_total_bytes"`
	StorageUsed   int64         `json:"storage_used_bytes" bson:"storage_used_bytes"`
	StorageTotal  int64         `json:"storage_total_bytes" bson:"storage_total_bytes"`
	RunningVMs    int           `json:"running_vms" bson:"running_vms"`
	RunningCTs    int           `json:"running_cts" bson:"running_cts"`
	Uptime        time.Duration `json:"uptime_ns" bson:"uptime_ns"`
	TemperatureC  float64       `json:"temperature_c,omitempty" bson:"temperature_c,omitempty"`
	NetInBytes    int64         `json:"net_in_bytes" bson:"net_in_bytes"`
	NetOutBytes   int64         `json:"net_out_bytes" bson:"net_out_bytes"`
	IOWaitPct     float64       `json:"iowait_pct,omitempty" bson:"iowait_pct,omitempty"`
}

// MediaStats holds session and library statistics from a media server.
type MediaStats struct {
	ActiveStreams  int      `json:"active_streams" bson:"active_streams"`
	NowPlaying     []string `json:"now_playing,omitempty" bson:"now_playing,omitempty"`
	Transcoding    int      `json:"transcoding" bson:"transcoding"`
	BandwidthKbps  int64    `json:"bandwidth_kbps" bson:"bandwidth_kbps"`
	MovieCount     int      `json:"movie_count" bson:"movie_count"`
	ShowCount      int      `json:"show_count" bson:"show_count"`
	SongCount      int      `json:"song_count" bson:"song_count"`
	ConnectedUsers int      `json:"connected_users" bson:"connected_users"`
}

// TorrentStats holds transfer statistics from a torrent client.
type TorrentStats struct {
	DownRateBps int64   `json:"down_rate_bps" bson:"down_rate_bps"`
	UpRateBps   int64   `json:"up_rate_bps" bson:"up_rate_bps"`
	Active      int     `json:"active" bson:"active"`
	Seeding     int     `json:"seeding" bson:"seeding"`
	Paused      int     `json:"paused" bson:"paused"`
	Completed   int     `json:"completed" bson:"completed"`
	ShareRatio  float64 `json:"share_ratio" bson:"share_ratio"`
}

// DNSFilterStats holds query statistics from a filtering DNS resolver.
type DNSFilterStats struct {
	Queries      int64   `json:"queries" bson:"queries"`
	Blocked      int64   `json:"blocked" bson:"blocked"`
	BlockedPct   float64 `json:"blocked_pct" bson:"blocked_pct"`
	Clients      int     `json:"clients" bson:"clients"`
	AvgLatencyMs float64 `json:"avg_latency_ms" bson:"avg_latency_ms"`
	Upstreams    int     `json:"upstreams" bson:"upstreams"`
	Rules        int     `json:"rules" bson:"rules"`
}

// StatsProvider fetches current statistics for a service. Implementations
// live outside this module (they own transport, credentials, and retries);
// the dashboard only calls Fetch and renders whichever variant comes back.
type StatsProvider interface {
	Fetch(ctx context.Context, svc Service) (Stats, error)
}
