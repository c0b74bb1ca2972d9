package cli

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/homedeck/internal/config"
	"github.com/matzehuels/homedeck/pkg/errors"
	"github.com/matzehuels/homedeck/pkg/grid"
	"github.com/matzehuels/homedeck/pkg/store"
)

// faultyStore wraps a memory store and fails loading one designated home.
type faultyStore struct {
	store.Store
	brokenHome string
}

func (s *faultyStore) Layout(ctx context.Context, home string) (grid.Layout, error) {
	if home == s.brokenHome {
		return grid.Layout{}, errors.New(errors.ErrCodeStore, "corrupt layout for %s", home)
	}
	return s.Store.Layout(ctx, home)
}

func TestListHomesSkipsBrokenHome(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	for _, home := range []string{"attic", "main"} {
		if err := mem.SetLayout(ctx, grid.NewLayout(home)); err != nil {
			t.Fatalf("SetLayout(%q) error: %v", home, err)
		}
	}

	c := New(io.Discard, log.InfoLevel)
	st := &faultyStore{Store: mem, brokenHome: "attic"}

	// One corrupt home must not abort the listing.
	if err := c.listHomes(ctx, st); err != nil {
		t.Errorf("listHomes error: %v", err)
	}
}

func TestListHomesPropagatesHomesError(t *testing.T) {
	ctx := context.Background()
	c := New(io.Discard, log.InfoLevel)
	st := &brokenHomesStore{}

	if err := c.listHomes(ctx, st); !errors.Is(err, errors.ErrCodeStore) {
		t.Errorf("listHomes error = %v, want code %v", err, errors.ErrCodeStore)
	}
}

// brokenHomesStore fails the home listing itself.
type brokenHomesStore struct {
	store.Store
}

func (s *brokenHomesStore) Homes(ctx context.Context) ([]string, error) {
	return nil, errors.New(errors.ErrCodeStore, "backend unavailable")
}

func TestNewStoreUnsupportedBackend(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	cfg := config.Default()
	cfg.Store.Backend = "etcd"

	_, err := c.newStore(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error for unsupported backend")
	}
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupported)
	}
}

func TestNewStoreMemoryBackend(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	cfg := config.Default()
	cfg.Store.Backend = config.BackendMemory

	st, err := c.newStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newStore error: %v", err)
	}
	defer st.Close(context.Background())

	if _, ok := st.(*store.Memory); !ok {
		t.Errorf("newStore returned %T, want *store.Memory", st)
	}
}
