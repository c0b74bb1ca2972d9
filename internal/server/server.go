// Package server exposes the layout engine over HTTP.
//
// The API is a thin JSON surface over the grid mutators and the layout
// store: every mutation loads the home's layout, applies one pure grid
// operation, persists the result, and returns the re-packed layout. Engine
// semantics leak through deliberately - mutating an unknown widget id is a
// 200 with an unchanged layout, not a 404, because the engine treats it as a
// silent no-op. Errors surface only for malformed requests and store
// failures.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/homedeck/pkg/errors"
	"github.com/matzehuels/homedeck/pkg/service"
	"github.com/matzehuels/homedeck/pkg/store"
)

// Server serves the homedeck HTTP API.
type Server struct {
	store    store.Store
	services []service.Service
	logger   *log.Logger
}

// New creates a server over the given store and service registry.
// If logger is nil, the default logger is used.
func New(st store.Store, services []service.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: st, services: services, logger: logger}
}

// Handler builds the chi router for the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/services", s.handleServices)
		r.Get("/homes", s.handleHomes)
		r.Delete("/homes", s.handleDeleteAllHomes)

		r.Route("/homes/{home}", func(r chi.Router) {
			r.Get("/layout", s.handleGetLayout)
			r.Put("/layout", s.handlePutLayout)
			r.Delete("/layout", s.handleDeleteLayout)

			r.Post("/arrange", s.handleArrange)
			r.Post("/generate", s.handleGenerate)

			r.Post("/widgets", s.handleAddWidget)
			r.Put("/widgets/{id}", s.handleUpdateWidget)
			r.Delete("/widgets/{id}", s.handleRemoveWidget)
			r.Post("/widgets/{id}/move", s.handleMoveWidget)
		})
	})

	return r
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error struct {
		Code    errors.Code `json:"code"`
		Message string      `json:"message"`
	} `json:"error"`
}

// writeJSON writes v as JSON with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError maps a structured error to an HTTP status and envelope.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidHome, errors.ErrCodeInvalidKind,
		errors.ErrCodeInvalidSize, errors.ErrCodeInvalidStrategy:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeHomeNotFound, errors.ErrCodeServiceNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeStoreUnavailable:
		status = http.StatusServiceUnavailable
	}

	var body errorBody
	body.Error.Code = errors.GetCode(err)
	if body.Error.Code == "" {
		body.Error.Code = errors.ErrCodeInternal
	}
	body.Error.Message = errors.UserMessage(err)

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	services := s.services
	if services == nil {
		services = []service.Service{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"services": services})
}
