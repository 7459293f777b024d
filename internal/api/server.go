package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/taskshift/internal/config"
	"github.com/dgallion1/taskshift/internal/dates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for taskshift.
type Server struct {
	router     chi.Router
	normalizer *dates.Normalizer
	log        *slog.Logger
	cfg        config.Config
}

// NewServer creates and configures the HTTP server. A nil normalizer
// disables date normalization for every request.
func NewServer(normalizer *dates.Normalizer, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		normalizer: normalizer,
		log:        log,
		cfg:        cfg,
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
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/migrate", s.handleMigrate)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
