// Package server exposes the PWF validation core over HTTP. This is the
// narrow contract the web editor consumes: it posts document text and
// renders the returned path-keyed issue lists.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey
// leaves the conversion endpoint unauthenticated.
func New(apiKey string, log *slog.Logger) *Server {
	s := &Server{
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Validation and parsing endpoints (open)
	s.router.Post("/api/v1/validate/plan", s.handleValidatePlan)
	s.router.Post("/api/v1/validate/history", s.handleValidateHistory)
	s.router.Post("/api/v1/parse/plan", s.handleParsePlan)
	s.router.Post("/api/v1/parse/history", s.handleParseHistory)
	s.router.Get("/api/v1/schemas", s.handleSchemas)

	// Conversion endpoint (API key required when configured)
	s.router.Route("/api/v1/convert", func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}
		r.Post("/{format}", s.handleConvert)
	})
}
