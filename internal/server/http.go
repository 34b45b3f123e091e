package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/windfall/pitch_service/internal/config"
	httphandler "github.com/windfall/pitch_service/internal/handler/http"
	"github.com/windfall/pitch_service/internal/metrics"
	"github.com/windfall/pitch_service/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by the server.
type Handlers struct {
	Health       *httphandler.HealthHandler
	Feedback     *httphandler.FeedbackHandler
	Catalog      *httphandler.CatalogHandler
	Introduction *httphandler.IntroductionHandler
}

// HTTPServer represents the HTTP server.
type HTTPServer struct {
	server *http.Server
	log    zerolog.Logger
}

// NewHTTPServer creates a new HTTP server.
func NewHTTPServer(cfg *config.Config, log zerolog.Logger, h Handlers) *HTTPServer {
	server := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      NewRouter(cfg, log, h),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &HTTPServer{
		server: server,
		log:    log,
	}
}

// NewRouter builds the chi router with middleware and routes.
func NewRouter(cfg *config.Config, log zerolog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(metrics.InstrumentHandler)
	r.Use(chimiddleware.Compress(5))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: cfg.CORSAllowedMethods,
		AllowedHeaders: cfg.CORSAllowedHeaders,
		MaxAge:         300,
	}))

	// Health endpoints
	r.Get("/health", h.Health.Health)
	r.Get("/ready", h.Health.Ready)
	r.Get("/live", h.Health.Live)
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Feedback
		r.Post("/feedback/analyze", h.Feedback.Analyze)

		// Catalogs
		r.Get("/soundscapes", h.Catalog.ListSoundscapes)
		r.Get("/soundscapes/{id}", h.Catalog.GetSoundscape)
		r.Get("/templates", h.Catalog.ListTemplates)
		r.Get("/tiers", h.Catalog.ListTiers)

		// Investor introductions
		r.Post("/introductions", h.Introduction.Submit)
	})

	return r
}

// Start starts the HTTP server.
func (s *HTTPServer) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
