package store

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/homedeck/pkg/grid"
)

// Memory is an in-memory layout store for development and testing.
type Memory struct {
	mu      sync.RWMutex
	layouts map[string]grid.Layout
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{layouts: make(map[string]grid.Layout)}
}

// Layout returns the stored layout for home, or an empty layout if none.
func (s *Memory) Layout(ctx context.Context, home string) (grid.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if l, ok := s.layouts[home]; ok {
		return cloneLayout(l), nil
	}
	return grid.NewLayout(home), nil
}

// SetLayout stores the layout under its home name.
func (s *Memory) SetLayout(ctx context.Context, l grid.Layout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.layouts[l.Home] = cloneLayout(l)
	return nil
}

// Delete removes the layout for home.
func (s *Memory) Delete(ctx context.Context, home string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.layouts, home)
	return nil
}

// DeleteAll removes every stored layout.
func (s *Memory) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.layouts)
	return nil
}

// Homes lists the stored home names, sorted.
func (s *Memory) Homes(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	homes := make([]string, 0, len(s.layouts))
	for home := range s.layouts {
		homes = append(homes, home)
	}
	slices.Sort(homes)
	return homes, nil
}

// Close does nothing for the in-memory store.
func (s *Memory) Close(ctx context.Context) error {
	return nil
}

// cloneLayout deep-copies the widget slice so callers and the store never
// share a backing array.
func cloneLayout(l grid.Layout) grid.Layout {
	out := grid.Layout{Home: l.Home}
	if l.Widgets != nil {
		out.Widgets = append([]grid.Widget(nil), l.Widgets...)
	}
	return out
}

// Ensure Memory implements Store.
var _ Store = (*Memory)(nil)
