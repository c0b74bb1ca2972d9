package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matzehuels/homedeck/pkg/grid"
	"github.com/matzehuels/homedeck/pkg/service"
	"github.com/matzehuels/homedeck/pkg/store"
)

var testServices = []service.Service{
	{ID: "pve", Name: "Proxmox", Kind: service.KindVMHost, Home: "main"},
	{ID: "jelly", Name: "Jellyfin", Kind: service.KindMedia, Home: "main"},
	{ID: "adguard", Name: "AdGuard", Kind: service.KindDNSFilter, Home: "lab"},
}

func newTestServer(t *testing.T) (*httptest.Server, store.Store) {
	t.Helper()
	st := store.NewMemory()
	ts := httptest.NewServer(New(st, testServices, nil).Handler())
	t.Cleanup(ts.Close)
	return ts, st
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeLayout(t *testing.T, resp *http.Response) grid.Layout {
	t.Helper()
	var l grid.Layout
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestGetLayoutEmptyHome(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/homes/main/layout", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	l := decodeLayout(t, resp)
	if l.Home != "main" || len(l.Widgets) != 0 {
		t.Errorf("empty home yielded %+v", l)
	}
}

func TestGenerateAndFetch(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/homes/main/generate", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	l := decodeLayout(t, resp)
	if len(l.Widgets) != 2 {
		t.Fatalf("generated %d widgets, want 2 (pve and jelly)", len(l.Widgets))
	}
	for _, w := range l.Widgets {
		if w.Size != grid.SizeSmall {
			t.Errorf("widget %s size = %s, want small", w.ServiceID, w.Size)
		}
	}

	got := decodeLayout(t, doJSON(t, http.MethodGet, ts.URL+"/api/homes/main/layout", nil))
	if len(got.Widgets) != 2 {
		t.Errorf("fetched %d widgets after generate, want 2", len(got.Widgets))
	}
}

func TestGenerateAuto(t *testing.T) {
	ts, _ := newTestServer(t)

	l := decodeLayout(t, doJSON(t, http.MethodPost, ts.URL+"/api/homes/main/generate?auto=true", nil))
	for _, w := range l.Widgets {
		if w.Size == grid.SizeAuto {
			t.Errorf("widget %s still auto after generate", w.ServiceID)
		}
	}
}

func TestAddWidget(t *testing.T) {
	ts, _ := newTestServer(t)

	widget := map[string]any{
		"service_id": "pve",
		"size":       "wide",
		"metrics":    map[string]any{"kind": "vmhost", "vmhost": []string{"cpu", "memory"}},
	}
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/homes/main/widgets", widget)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	l := decodeLayout(t, resp)
	if len(l.Widgets) != 1 {
		t.Fatalf("widget count = %d, want 1", len(l.Widgets))
	}
	if l.Widgets[0].ID == "" {
		t.Error("server did not assign a widget id")
	}
	if l.Widgets[0].Row != 0 || l.Widgets[0].Column != 0 {
		t.Errorf("widget not packed: (%d,%d)", l.Widgets[0].Row, l.Widgets[0].Column)
	}
}

func TestAddWidgetInvalidSize(t *testing.T) {
	ts, _ := newTestServer(t)

	widget := map[string]any{"service_id": "pve", "size": "gigantic"}
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/homes/main/widgets", widget)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

// Engine semantics: removing an unknown widget succeeds with an unchanged
// layout. The API must not turn the silent no-op into a 404.
func TestRemoveWidgetAbsentIsOK(t *testing.T) {
	ts, _ := newTestServer(t)

	doJSON(t, http.MethodPost, ts.URL+"/api/homes/main/generate", nil)
	resp := doJSON(t, http.MethodDelete, ts.URL+"/api/homes/main/widgets/nope", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if l := decodeLayout(t, resp); len(l.Widgets) != 2 {
		t.Errorf("widget count changed to %d", len(l.Widgets))
	}
}

func TestMoveWidget(t *testing.T) {
	ts, _ := newTestServer(t)

	l := decodeLayout(t, doJSON(t, http.MethodPost, ts.URL+"/api/homes/main/generate", nil))
	first := l.Widgets[0].ID

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/homes/main/widgets/"+first+"/move",
		map[string]int{"index": 99})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	moved := decodeLayout(t, resp)
	if moved.Widgets[len(moved.Widgets)-1].ID != first {
		t.Error("clamped move did not land at the end")
	}
}

func TestArrangeStrategies(t *testing.T) {
	ts, _ := newTestServer(t)
	doJSON(t, http.MethodPost, ts.URL+"/api/homes/main/generate", nil)

	for _, strategy := range []string{"sequential", "flexible", "smart", ""} {
		resp := doJSON(t, http.MethodPost, ts.URL+"/api/homes/main/arrange?strategy="+strategy, nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("strategy %q: status = %d, want 200", strategy, resp.StatusCode)
		}
	}

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/homes/main/arrange?strategy=chaotic", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown strategy: status = %d, want 400", resp.StatusCode)
	}
}

func TestPutLayoutNormalizes(t *testing.T) {
	ts, _ := newTestServer(t)

	body := grid.Layout{
		Home: "ignored",
		Widgets: []grid.Widget{
			{ID: "a", ServiceID: "pve", Size: grid.SizeWide, Row: -2, Column: 1},
		},
	}
	resp := doJSON(t, http.MethodPut, ts.URL+"/api/homes/main/layout", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	l := decodeLayout(t, resp)
	if l.Home != "main" {
		t.Errorf("home = %q, want path value main", l.Home)
	}
	if w := l.Widgets[0]; w.Column != 0 || w.Row != 0 {
		t.Errorf("layout not normalized: (%d,%d)", w.Row, w.Column)
	}
}

func TestHomesListAndDeleteAll(t *testing.T) {
	ts, _ := newTestServer(t)

	doJSON(t, http.MethodPost, ts.URL+"/api/homes/main/generate", nil)
	doJSON(t, http.MethodPost, ts.URL+"/api/homes/lab/generate", nil)

	var listing struct {
		Homes []string `json:"homes"`
	}
	resp := doJSON(t, http.MethodGet, ts.URL+"/api/homes", nil)
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		t.Fatal(err)
	}
	if len(listing.Homes) != 2 {
		t.Fatalf("homes = %v, want 2 entries", listing.Homes)
	}

	if resp := doJSON(t, http.MethodDelete, ts.URL+"/api/homes", nil); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete all: status = %d, want 204", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/homes", nil)
	listing.Homes = nil
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		t.Fatal(err)
	}
	if len(listing.Homes) != 0 {
		t.Errorf("homes after delete all = %v", listing.Homes)
	}
}
