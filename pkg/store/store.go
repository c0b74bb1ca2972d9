// Package store persists dashboard layouts keyed by home name.
//
// This package defines the Store interface the rest of the application is
// written against, with implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for single-machine deployments (the default)
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage when layouts live next to other documents
//
// # Semantics
//
// A home's layout exists implicitly: Layout returns an empty layout for a
// home that was never written, so first access needs no explicit create.
// SetLayout overwrites the whole layout atomically per home - the layout
// engine always hands over a complete value, never a delta. The store makes
// no assumption about who re-packs; it persists whatever it is given.
//
// # Usage
//
//	st := store.NewMemory()
//
//	l, err := st.Layout(ctx, "main")
//	if err != nil {
//	    return err
//	}
//	l = grid.AddWidget(l, w)
//	if err := st.SetLayout(ctx, l); err != nil {
//	    return err
//	}
package store

import (
	"context"

	"github.com/matzehuels/homedeck/pkg/grid"
)

// Store is the interface for layout persistence backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Layout retrieves the layout for a home. A home that was never written
	// yields an empty layout, not an error.
	Layout(ctx context.Context, home string) (grid.Layout, error)

	// SetLayout stores a complete layout under its home name.
	SetLayout(ctx context.Context, l grid.Layout) error

	// Delete removes the layout for a home. Removing an unknown home is
	// not an error.
	Delete(ctx context.Context, home string) error

	// DeleteAll removes every stored layout.
	DeleteAll(ctx context.Context) error

	// Homes lists the home names with a stored layout, sorted.
	Homes(ctx context.Context) ([]string, error)

	// Close releases backend resources. The store is unusable afterwards.
	Close(ctx context.Context) error
}
