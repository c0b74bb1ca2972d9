// Package service defines the descriptors for the self-hosted services a
// dashboard can display: the service kinds, the metric identifiers each kind
// exposes, and the typed statistics payloads their pollers produce.
//
// The package is deliberately passive. It owns no network clients, no
// credentials, and no refresh logic; pollers live outside this module and are
// consumed through the narrow [StatsProvider] interface.
package service

// Kind identifies which category of self-hosted service a descriptor points
// at. The set is closed: every switch over Kind in this module is exhaustive.
type Kind string

// Supported service kinds.
const (
	// KindVMHost is a virtualization host (VMs, containers, node resources).
	KindVMHost Kind = "vmhost"

	// KindMedia is a media server (streams, libraries, transcoding).
	KindMedia Kind = "media"

	// KindTorrent is a torrent client (transfer rates, torrent states).
	KindTorrent Kind = "torrent"

	// KindDNSFilter is a filtering DNS resolver (queries, block rates).
	KindDNSFilter Kind = "dnsfilter"
)

// Kinds lists all supported kinds in canonical order.
var Kinds = []Kind{KindVMHost, KindMedia, KindTorrent, KindDNSFilter}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindVMHost, KindMedia, KindTorrent, KindDNSFilter:
		return true
	}
	return false
}

// Service describes one configured service instance. Services are static
// configuration: they come from the config file (or a registry collaborator)
// and are matched to widgets by ID only. A widget may outlive its service;
// callers filter such orphans before display.
type Service struct {
	ID   string `json:"id" toml:"id" bson:"id"`
	Name string `json:"name,omitempty" toml:"name" bson:"name,omitempty"`
	Kind Kind   `json:"kind" toml:"kind" bson:"kind"`
	Home string `json:"home" toml:"home" bson:"home"`
	URL  string `json:"url,omitempty" toml:"url" bson:"url,omitempty"`
}

// ByID returns the service with the given id, or nil if absent.
func ByID(services []Service, id string) *Service {
	for i := range services {
		if services[i].ID == id {
			return &services[i]
		}
	}
	return nil
}

// ForHome returns the services assigned to the given home, preserving order.
func ForHome(services []Service, home string) []Service {
	var out []Service
	for _, s := range services {
		if s.Home == home {
			out = append(out, s)
		}
	}
	return out
}
