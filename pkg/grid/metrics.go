package grid

import "github.com/matzehuels/homedeck/pkg/service"

// =============================================================================
// MetricSelection - Discriminated Union of Selected Metrics
// =============================================================================

// MetricSelection is the ordered set of metrics a widget displays.
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
// kind, matching the shape the persistence collaborator already stores.
//
// Order within a variant is meaningful (display order). Duplicates are not
// structurally prevented here; the UI's toggle logic is the only thing that
// keeps selections unique.
type MetricSelection struct {
	// Discriminator
	Kind service.Kind `json:"kind" bson:"kind"`

	// Per-kind selections
	VMHost    []service.VMHostMetric    `json:"vmhost,omitempty" bson:"vmhost,omitempty"`
	Media     []service.MediaMetric     `json:"media,omitempty" bson:"media,omitempty"`
	Torrent   []service.TorrentMetric   `json:"torrent,omitempty" bson:"torrent,omitempty"`
	DNSFilter []service.DNSFilterMetric `json:"dnsfilter,omitempty" bson:"dnsfilter,omitempty"`
}

// SelectVMHost builds a selection of virtualization host metrics.
func SelectVMHost(metrics ...service.VMHostMetric) MetricSelection {
	return MetricSelection{Kind: service.KindVMHost, VMHost: metrics}
}

// SelectMedia builds a selection of media server metrics.
func SelectMedia(metrics ...service.MediaMetric) MetricSelection {
	return MetricSelection{Kind: service.KindMedia, Media: metrics}
}

// SelectTorrent builds a selection of torrent client metrics.
func SelectTorrent(metrics ...service.TorrentMetric) MetricSelection {
	return MetricSelection{Kind: service.KindTorrent, Torrent: metrics}
}

// SelectDNSFilter builds a selection of DNS filter metrics.
func SelectDNSFilter(metrics ...service.DNSFilterMetric) MetricSelection {
	return MetricSelection{Kind: service.KindDNSFilter, DNSFilter: metrics}
}

// Count returns the number of selected metric identifiers.
func (m MetricSelection) Count() int {
	switch m.Kind {
	case service.KindVMHost:
		return len(m.VMHost)
	case service.KindMedia:
		return len(m.Media)
	case service.KindTorrent:
		return len(m.Torrent)
	case service.KindDNSFilter:
		return len(m.DNSFilter)
	default:
		return 0
	}
}

// Names returns the selected metric identifiers as plain strings, in
// selection order.
func (m MetricSelection) Names() []string {
	out := make([]string, 0, m.Count())
	switch m.Kind {
	case service.KindVMHost:
		for _, id := range m.VMHost {
			out = append(out, string(id))
		}
	case service.KindMedia:
		for _, id := range m.Media {
			out = append(out, string(id))
		}
	case service.KindTorrent:
		for _, id := range m.Torrent {
			out = append(out, string(id))
		}
	case service.KindDNSFilter:
		for _, id := range m.DNSFilter {
			out = append(out, string(id))
		}
	}
	return out
}

// Contains reports whether the selection includes the given metric
// identifier.
func (m MetricSelection) Contains(name string) bool {
	for _, id := range m.Names() {
		if id == name {
			return true
		}
	}
	return false
}
