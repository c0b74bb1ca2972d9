package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/homedeck/pkg/errors"
	"github.com/matzehuels/homedeck/pkg/grid"
)

// File is a file-based layout store. Each home is one JSON file in a base
// directory, so layouts survive restarts and stay hand-editable.
type File struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFile creates a file-based store rooted at baseDir.
// If baseDir is empty, defaults to ~/.config/homedeck/layouts/
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "homedeck", "layouts")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create layout dir: %w", err)
	}
	return &File{baseDir: baseDir}, nil
}

func (s *File) layoutPath(home string) string {
	return filepath.Join(s.baseDir, home+".json")
}

// Layout reads the layout for home, or returns an empty layout if the file
// does not exist.
func (s *File) Layout(ctx context.Context, home string) (grid.Layout, error) {
	if err := errors.ValidateHomeName(home); err != nil {
		return grid.Layout{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.layoutPath(home))
	if err != nil {
		if os.IsNotExist(err) {
			return grid.NewLayout(home), nil
		}
		return grid.Layout{}, errors.Wrap(errors.ErrCodeStore, err, "read layout for %s", home)
	}

	var l grid.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return grid.Layout{}, errors.Wrap(errors.ErrCodeStore, err, "parse layout for %s", home)
	}
	return l, nil
}

// SetLayout writes the layout as pretty-printed JSON. The write goes through
// a temp file and rename so a crash never leaves a torn layout behind.
func (s *File) SetLayout(ctx context.Context, l grid.Layout) error {
	if err := errors.ValidateHomeName(l.Home); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal layout for %s", l.Home)
	}

	path := s.layoutPath(l.Home)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write layout for %s", l.Home)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeStore, err, "write layout for %s", l.Home)
	}
	return nil
}

// Delete removes the layout file for home. A missing file is not an error.
func (s *File) Delete(ctx context.Context, home string) error {
	if err := errors.ValidateHomeName(home); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.layoutPath(home))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStore, err, "delete layout for %s", home)
	}
	return nil
}

// DeleteAll removes every layout file in the base directory.
func (s *File) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	homes, err := s.listHomes()
	if err != nil {
		return err
	}
	for _, home := range homes {
		if err := os.Remove(s.layoutPath(home)); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeStore, err, "delete layout for %s", home)
		}
	}
	return nil
}

// Homes lists homes by scanning the base directory, sorted.
func (s *File) Homes(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listHomes()
}

func (s *File) listHomes() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list layouts")
	}

	var homes []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		homes = append(homes, strings.TrimSuffix(name, ".json"))
	}
	slices.Sort(homes)
	return homes, nil
}

// Close does nothing for the file store.
func (s *File) Close(ctx context.Context) error {
	return nil
}

// Ensure File implements Store.
var _ Store = (*File)(nil)
