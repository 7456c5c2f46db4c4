package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bestxiangest/Goods-Trading-Center/internal/adminapi"
	"github.com/bestxiangest/Goods-Trading-Center/internal/config"
	"github.com/bestxiangest/Goods-Trading-Center/internal/store"
	"github.com/bestxiangest/Goods-Trading-Center/internal/ui"
)

// Version is reported by /health.
const Version = "0.1.0"

// Server is the admin console web server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.Config
	startTime time.Time
	store     store.SessionStore
	gatherer  prometheus.Gatherer
	ui        *ui.UI // UI handler for web interface
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithGatherer sets the registry served on /metrics. Without it the
// default Prometheus registry is used.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// New creates a new Server with all routes registered.
func New(cfg config.Config, st store.SessionStore, api *adminapi.Client, logger *slog.Logger, opts ...Option) (*Server, error) {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		store:     st,
		gatherer:  prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}

	u, err := ui.New(api, st, logger, ui.Config{
		Secure:     cfg.Console.SecureCookies,
		PageSize:   cfg.List.PerPage,
		CacheSize:  cfg.Console.SessionCache,
		SessionTTL: cfg.Console.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}
	s.ui = u

	s.routes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Sessions returns the console's session manager.
func (s *Server) Sessions() *ui.SessionManager {
	return s.ui.Sessions()
}

// StartSessionCleanup removes expired console sessions every interval
// until ctx is done.
func (s *Server) StartSessionCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.cleanupSessions(ctx)
			}
		}
	}()
}

func (s *Server) cleanupSessions(ctx context.Context) {
	n, err := s.ui.Sessions().CleanupExpiredSessions(ctx)
	if err != nil {
		s.logger.Warn("session cleanup failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("expired sessions removed", "count", n)
	}
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware(s.logger))
	r.Use(accessLog(s.logger))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	// Console routes (HTML)
	s.ui.RegisterRoutes(r)
}
