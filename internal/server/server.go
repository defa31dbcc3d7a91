package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sajee05/effortless-time-tracker/internal/api"
	"github.com/sajee05/effortless-time-tracker/internal/cache"
	"github.com/sajee05/effortless-time-tracker/internal/config"
	"github.com/sajee05/effortless-time-tracker/internal/logging"
	"github.com/sajee05/effortless-time-tracker/internal/metrics"
)

// shutdownTimeout bounds the graceful drain after a stop signal.
const shutdownTimeout = 5 * time.Second

// Server hosts the overlay page and its JSON API.
type Server struct {
	mux     *chi.Mux
	api     api.API
	cache   cache.Provider
	metrics metrics.Provider
	logger  logging.Logger
	conf    *config.Config
	started time.Time
}

// New assembles the router with its middleware chain.
func New(conf *config.Config, studyAPI api.API, cacheProvider cache.Provider, meter metrics.Provider, logger logging.Logger) *Server {
	s := &Server{
		mux:     chi.NewMux(),
		api:     studyAPI,
		cache:   cacheProvider,
		metrics: meter,
		logger:  logger,
		conf:    conf,
		started: time.Now(),
	}
	s.routes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	s.mux.Use(s.requestIDMiddleware)
	s.mux.Use(s.loggingMiddleware)

	s.mux.Get("/healthz", s.Healthz)
	if s.conf.Metrics.Enabled {
		s.mux.Handle("/metrics", promhttp.Handler())
	}

	s.mux.Get("/overlay", s.OverlayPage)

	s.mux.Route("/api", func(r chi.Router) {
		r.Use(s.metricsMiddleware)
		r.Get("/overlay", s.APIOverlay)
		r.Get("/summary", s.APISummary)
		r.Get("/state", s.APIState)
		r.Post("/toggle", s.APIToggle)
	})
}

// Run serves until the context is canceled or a SIGINT/SIGTERM arrives,
// then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.conf.ListenAddr(),
		Handler:      s.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Infof("overlay available on http://%s/overlay", s.conf.ListenAddr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
		s.logger.Infof("shutdown signal received")
	case <-ctx.Done():
		s.logger.Infof("context canceled, shutting down")
	case err := <-serverErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Infof("gracefully stopped")
	return nil
}
