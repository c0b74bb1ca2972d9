package grid

import "github.com/matzehuels/homedeck/pkg/service"

// Default widget configuration per service kind. These are fixed lookup
// tables, not computed: changing an entry changes what every freshly
// generated home looks like, so treat edits as behavior changes.

// optimalSizeByKind is the size a brand-new widget of each kind gets when
// the caller asked for an automatic layout.
var optimalSizeByKind = map[service.Kind]Size{
	service.KindVMHost:    SizeLarge,
	service.KindMedia:     SizeWide,
	service.KindTorrent:   SizeMedium,
	service.KindDNSFilter: SizeMedium,
}

// OptimalSizeForKind returns the default size for a new widget of the given
// kind in an automatic layout. Unknown kinds fall back to SizeSmall.
func OptimalSizeForKind(kind service.Kind) Size {
	if s, ok := optimalSizeByKind[kind]; ok {
		return s
	}
	return SizeSmall
}

// DefaultMetricsForSize returns the default metric selection for a widget of
// the given kind at the given size. Sizes without an explicit entry reuse
// the small set; SizeAuto also maps to the small set since its footprint is
// unknown until resolved.
func DefaultMetricsForSize(kind service.Kind, size Size) MetricSelection {
	switch kind {
	case service.KindVMHost:
		return vmhostDefaults(size)
	case service.KindMedia:
		return mediaDefaults(size)
	case service.KindTorrent:
		return torrentDefaults(size)
	case service.KindDNSFilter:
		return dnsFilterDefaults(size)
	default:
		return MetricSelection{Kind: kind}
	}
}

func vmhostDefaults(size Size) MetricSelection {
	switch size {
	case SizeMedium:
		return SelectVMHost(service.VMHostCPU, service.VMHostMemory, service.VMHostStorage,
			service.VMHostVMs, service.VMHostUptime)
	case SizeWide:
		return SelectVMHost(service.VMHostCPU, service.VMHostMemory, service.VMHostStorage)
	case SizeLarge:
		return SelectVMHost(service.VMHostCPU, service.VMHostMemory, service.VMHostStorage,
			service.VMHostVMs, service.VMHostContainers, service.VMHostUptime,
			service.VMHostNetIn, service.VMHostNetOut)
	case SizeTall, SizeExtraWide:
		return SelectVMHost(service.VMHostCPU, service.VMHostMemory, service.VMHostStorage,
			service.VMHostVMs, service.VMHostContainers, service.VMHostUptime,
			service.VMHostTemperature, service.VMHostNetIn, service.VMHostNetOut,
			service.VMHostIOWait)
	default:
		return SelectVMHost(service.VMHostCPU, service.VMHostMemory, service.VMHostUptime)
	}
}

func mediaDefaults(size Size) MetricSelection {
	switch size {
	case SizeMedium:
		return SelectMedia(service.MediaStreams, service.MediaTranscoding,
			service.MediaBandwidth, service.MediaUsers)
	case SizeWide:
		return SelectMedia(service.MediaStreams, service.MediaNowPlaying, service.MediaBandwidth)
	case SizeLarge:
		return SelectMedia(service.MediaStreams, service.MediaNowPlaying,
			service.MediaTranscoding, service.MediaBandwidth, service.MediaMovies,
			service.MediaShows, service.MediaUsers)
	case SizeTall, SizeExtraWide:
		return SelectMedia(service.MediaStreams, service.MediaNowPlaying,
			service.MediaTranscoding, service.MediaBandwidth, service.MediaMovies,
			service.MediaShows, service.MediaSongs, service.MediaUsers)
	default:
		return SelectMedia(service.MediaStreams, service.MediaTranscoding)
	}
}

func torrentDefaults(size Size) MetricSelection {
	switch size {
	case SizeMedium:
		return SelectTorrent(service.TorrentDownRate, service.TorrentUpRate,
			service.TorrentActive, service.TorrentSeeding)
	case SizeWide:
		return SelectTorrent(service.TorrentDownRate, service.TorrentUpRate, service.TorrentRatio)
	case SizeLarge, SizeTall, SizeExtraWide:
		return SelectTorrent(service.TorrentDownRate, service.TorrentUpRate,
			service.TorrentActive, service.TorrentSeeding, service.TorrentPaused,
			service.TorrentCompleted, service.TorrentRatio)
	default:
		return SelectTorrent(service.TorrentDownRate, service.TorrentUpRate)
	}
}

func dnsFilterDefaults(size Size) MetricSelection {
	switch size {
	case SizeMedium:
		return SelectDNSFilter(service.DNSQueries, service.DNSBlocked,
			service.DNSBlockedPct, service.DNSClients)
	case SizeWide:
		return SelectDNSFilter(service.DNSQueries, service.DNSBlockedPct, service.DNSLatency)
	case SizeLarge, SizeTall, SizeExtraWide:
		return SelectDNSFilter(service.DNSQueries, service.DNSBlocked,
			service.DNSBlockedPct, service.DNSClients, service.DNSLatency,
			service.DNSUpstreams, service.DNSRules)
	default:
		return SelectDNSFilter(service.DNSQueries, service.DNSBlockedPct)
	}
}

// GenerateLayout builds the initial layout for a home: one small widget per
// service in the home, with the kind's small-size default metrics, packed
// sequentially.
func GenerateLayout(home string, services []service.Service) Layout {
	l := NewLayout(home)
	for _, svc := range service.ForHome(services, home) {
		l.Widgets = append(l.Widgets, NewWidget(svc.ID, SizeSmall, DefaultMetricsForSize(svc.Kind, SizeSmall)))
	}
	return ArrangeSequential(l)
}

// GenerateAutoLayout builds the initial layout for a home with auto-sized
// widgets: metrics default to the kind's optimal-size set, sizes resolve
// during the smart pack.
func GenerateAutoLayout(home string, services []service.Service) Layout {
	l := NewLayout(home)
	for _, svc := range service.ForHome(services, home) {
		optimal := OptimalSizeForKind(svc.Kind)
		l.Widgets = append(l.Widgets, NewWidget(svc.ID, SizeAuto, DefaultMetricsForSize(svc.Kind, optimal)))
	}
	return ArrangeSmart(l)
}
