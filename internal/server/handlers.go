package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/homedeck/pkg/errors"
	"github.com/matzehuels/homedeck/pkg/grid"
)

func (s *Server) handleHomes(w http.ResponseWriter, r *http.Request) {
	homes, err := s.store.Homes(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if homes == nil {
		homes = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"homes": homes})
}

func (s *Server) handleDeleteAllHomes(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteAll(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	l, err := s.store.Layout(r.Context(), chi.URLParam(r, "home"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, l)
}

// handlePutLayout replaces the whole layout. The body's home name is
// overridden by the path so a layout cannot be written under a foreign key;
// the layout is normalized before storing so a hand-crafted body cannot
// violate the grid invariants.
func (s *Server) handlePutLayout(w http.ResponseWriter, r *http.Request) {
	var l grid.Layout
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout"))
		return
	}
	l.Home = chi.URLParam(r, "home")

	for _, widget := range l.Widgets {
		if !widget.Size.Valid() {
			s.writeError(w, errors.New(errors.ErrCodeInvalidSize, "unknown size %q", widget.Size))
			return
		}
	}

	l = grid.Normalize(l)
	if err := s.store.SetLayout(r.Context(), l); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "home")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// mutate loads the home's layout, applies op, persists and returns the
// result. This is the shape of every widget-level endpoint.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, op func(grid.Layout) grid.Layout) {
	home := chi.URLParam(r, "home")

	l, err := s.store.Layout(r.Context(), home)
	if err != nil {
		s.writeError(w, err)
		return
	}

	l = op(l)
	if err := s.store.SetLayout(r.Context(), l); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleAddWidget(w http.ResponseWriter, r *http.Request) {
	var widget grid.Widget
	if err := json.NewDecoder(r.Body).Decode(&widget); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode widget"))
		return
	}
	if widget.ID == "" {
		widget.ID = uuid.NewString()
	}
	if widget.Size == "" {
		widget.Size = grid.SizeAuto
	}
	if !widget.Size.Valid() {
		s.writeError(w, errors.New(errors.ErrCodeInvalidSize, "unknown size %q", widget.Size))
		return
	}

	s.mutate(w, r, func(l grid.Layout) grid.Layout {
		return grid.AddWidget(l, widget)
	})
}

func (s *Server) handleUpdateWidget(w http.ResponseWriter, r *http.Request) {
	var widget grid.Widget
	if err := json.NewDecoder(r.Body).Decode(&widget); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode widget"))
		return
	}
	widget.ID = chi.URLParam(r, "id")
	if !widget.Size.Valid() {
		s.writeError(w, errors.New(errors.ErrCodeInvalidSize, "unknown size %q", widget.Size))
		return
	}

	s.mutate(w, r, func(l grid.Layout) grid.Layout {
		return grid.UpdateWidget(l, widget)
	})
}

func (s *Server) handleRemoveWidget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mutate(w, r, func(l grid.Layout) grid.Layout {
		return grid.RemoveWidget(l, id)
	})
}

func (s *Server) handleMoveWidget(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode move request"))
		return
	}

	id := chi.URLParam(r, "id")
	s.mutate(w, r, func(l grid.Layout) grid.Layout {
		return grid.MoveWidget(l, id, body.Index)
	})
}

// handleArrange re-packs the layout with the requested strategy.
func (s *Server) handleArrange(w http.ResponseWriter, r *http.Request) {
	var pack func(grid.Layout) grid.Layout
	switch strategy := r.URL.Query().Get("strategy"); strategy {
	case "", "smart":
		pack = func(l grid.Layout) grid.Layout { return grid.ApplyAutoLayout(l, s.services) }
	case "sequential":
		pack = grid.ArrangeSequential
	case "flexible":
		pack = grid.ArrangeFlexible
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q", strategy))
		return
	}
	s.mutate(w, r, pack)
}

// handleGenerate replaces the layout with freshly generated defaults for the
// home's services. ?auto=true generates auto-sized widgets and smart-packs.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	home := chi.URLParam(r, "home")

	var l grid.Layout
	if r.URL.Query().Get("auto") == "true" {
		l = grid.GenerateAutoLayout(home, s.services)
	} else {
		l = grid.GenerateLayout(home, s.services)
	}

	if err := s.store.SetLayout(r.Context(), l); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, l)
}
