// Package server exposes scene resolution and storage over HTTP.
//
// # Routes
//
//	GET    /healthz                   liveness probe
//	POST   /v1/position               scene JSON -> resolved scene JSON
//	POST   /v1/render                 scene JSON -> SVG (or ?format=png|pdf|json)
//	GET    /v1/placements             tooltip placements and their fallbacks
//	POST   /v1/scenes                 store a scene
//	GET    /v1/scenes                 list stored scenes
//	GET    /v1/scenes/{id}            fetch a stored scene
//	DELETE /v1/scenes/{id}            delete a stored scene
//	POST   /v1/scenes/{id}/position   resolve a stored scene
//
// Every response carries an X-Request-ID header. Errors are JSON objects
// with a machine-readable code; coded errors from pkg/errors pick the
// status.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/overlaykit/pkg/pipeline"
	"github.com/matzehuels/overlaykit/pkg/store"
)

// Defaults for [Config].
const (
	DefaultAddr         = ":8080"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultMaxBodyBytes = 1 << 20
)

// Config configures a [Server].
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64

	Runner *pipeline.Runner
	Store  store.Store
	Logger *log.Logger
}

// Server is the overlaykit HTTP service.
type Server struct {
	cfg    Config
	router chi.Router
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New builds a server. A nil runner resolves without caching and a nil
// store keeps scenes in memory.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}

	s := &Server{cfg: cfg, runner: cfg.Runner, store: cfg.Store, logger: cfg.Logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/position", s.handlePosition)
		r.Post("/render", s.handleRender)
		r.Get("/placements", s.handlePlacements)
		r.Route("/scenes", func(r chi.Router) {
			r.Post("/", s.handleCreateScene)
			r.Get("/", s.handleListScenes)
			r.Get("/{id}", s.handleGetScene)
			r.Delete("/{id}", s.handleDeleteScene)
			r.Post("/{id}/position", s.handlePositionScene)
		})
	})
	return r
}

// Handler returns the HTTP handler of the service.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", s.cfg.Addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// Close releases the runner cache and the store.
func (s *Server) Close() error {
	return errors.Join(s.runner.Close(), s.store.Close())
}
