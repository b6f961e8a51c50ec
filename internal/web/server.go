package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/emiliopalmerini/streamstats/internal/analytics"
)

// Options configures the HTTP server.
type Options struct {
	Port            int
	MaxUploadBytes  int64
	ShutdownTimeout time.Duration
}

type Server struct {
	router          chi.Router
	analytics       *analytics.Service
	port            int
	maxUploadBytes  int64
	shutdownTimeout time.Duration
}

func NewServer(svc *analytics.Service, opts Options) *Server {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 32 << 20
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	s := &Server{
		router:          chi.NewRouter(),
		analytics:       svc,
		port:            opts.Port,
		maxUploadBytes:  opts.MaxUploadBytes,
		shutdownTimeout: opts.ShutdownTimeout,
	}
	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(RequestLogger)
	s.router.Use(middleware.Recoverer)

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages
	s.router.Get("/", s.handleIndex)
	s.router.Post("/upload", s.handleUpload)
	s.router.Post("/example", s.handleExample)

	// API
	s.router.Post("/api/report", s.handleAPIReport)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Msgf("Starting server at http://localhost:%d", s.port)

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
