package grid

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/homedeck/pkg/service"
)

func TestMetricSelectionCount(t *testing.T) {
	tests := []struct {
		name string
		sel  MetricSelection
		want int
	}{
		{"VMHost", SelectVMHost(service.VMHostCPU, service.VMHostMemory), 2},
		{"Media", SelectMedia(service.MediaStreams), 1},
		{"EmptyTorrent", SelectTorrent(), 0},
		{"UnknownKind", MetricSelection{Kind: "mystery"}, 0},
		// Duplicates are not deduplicated; only the UI prevents them.
		{"Duplicates", SelectDNSFilter(service.DNSQueries, service.DNSQueries), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMetricSelectionContains(t *testing.T) {
	sel := SelectMedia(service.MediaStreams, service.MediaNowPlaying)
	if !sel.Contains("nowplaying") {
		t.Error("Contains(nowplaying) = false")
	}
	if sel.Contains("transcoding") {
		t.Error("Contains(transcoding) = true")
	}
}

// The wire shape carries the kind discriminator plus exactly one populated
// side-channel field; the persistence collaborator depends on this layout.
func TestMetricSelectionWireShape(t *testing.T) {
	data, err := json.Marshal(SelectTorrent(service.TorrentDownRate, service.TorrentUpRate))
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if string(raw["kind"]) != `"torrent"` {
		t.Errorf("kind = %s, want \"torrent\"", raw["kind"])
	}
	if _, ok := raw["torrent"]; !ok {
		t.Error("torrent side-channel field missing")
	}
	for _, other := range []string{"vmhost", "media", "dnsfilter"} {
		if _, ok := raw[other]; ok {
			t.Errorf("unexpected %s field in %s", other, data)
		}
	}

	var back MetricSelection
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Kind != service.KindTorrent || back.Count() != 2 {
		t.Errorf("round trip lost data: %+v", back)
	}
	if !strings.Contains(string(data), "downrate") {
		t.Errorf("metric identifiers not serialized as strings: %s", data)
	}
}
