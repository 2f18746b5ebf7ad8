// Package api is the HTTP surface of xmlgest: submit XML documents, read the
// transformed structures back as JSON, plain text or HTML.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/xmlgest/internal/config"
	"github.com/dgallion1/xmlgest/internal/pipeline"
	"github.com/dgallion1/xmlgest/internal/store"
)

// Server is the HTTP API server for xmlgest.
type Server struct {
	router  chi.Router
	store   *store.Store
	proc    *pipeline.Processor
	presets map[string]config.Preset
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server. The presets map holds
// the named transform sequences clients may select by query parameter.
func NewServer(st *store.Store, proc *pipeline.Processor, presets map[string]config.Preset, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:   st,
		proc:    proc,
		presets: presets,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/documents", s.handleCreateDocument)
		r.Post("/api/documents/batch", s.handleBatchDocuments)
		r.Get("/api/documents", s.handleListDocuments)
		r.Get("/api/documents/{docID}", s.handleGetDocument)
		r.Delete("/api/documents/{docID}", s.handleDeleteDocument)

		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
