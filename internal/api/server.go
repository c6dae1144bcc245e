// Package api exposes the brief pipeline over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sells-group/npd-cli/internal/config"
	"github.com/sells-group/npd-cli/internal/ingest"
	"github.com/sells-group/npd-cli/internal/pipeline"
	"github.com/sells-group/npd-cli/internal/report"
)

const defaultMaxBodyBytes = 5 << 20

// Server holds the handlers' dependencies.
type Server struct {
	engine   *pipeline.Engine
	listener *ingest.Listener
	reporter *report.Reporter
	cfg      config.ServerConfig
}

// NewServer creates a Server.
func NewServer(engine *pipeline.Engine, listener *ingest.Listener, reporter *report.Reporter, cfg config.ServerConfig) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	return &Server{engine: engine, listener: listener, reporter: reporter, cfg: cfg}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	if s.cfg.RequestTimeoutSecs > 0 {
		r.Use(chimiddleware.Timeout(time.Duration(s.cfg.RequestTimeoutSecs) * time.Second))
	}

	r.Get("/health", s.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1/brands", func(r chi.Router) {
		r.Get("/", s.brands)
		r.Route("/{brand}", func(r chi.Router) {
			r.Post("/analyze", s.analyze)
			r.Post("/live", s.live)
		})
	})

	return r
}
