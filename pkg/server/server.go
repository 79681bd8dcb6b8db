package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/graphwiz/pkg/cache"
	"github.com/matzehuels/graphwiz/pkg/render/dot"
)

const (
	// DefaultMaxBodySize limits manifest uploads.
	DefaultMaxBodySize = 1 << 20
	// DefaultTimeout bounds a single Graphviz layout.
	DefaultTimeout = 30 * time.Second
)

// Option configures a [Server].
type Option func(*Server)

// WithCache stores rendered images in c for ttl.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Server) {
		s.cache = c
		s.ttl = ttl
	}
}

// WithDefaults sets the DOT flavor used for manifests that do not choose one.
func WithDefaults(opts dot.Options) Option {
	return func(s *Server) { s.defaults = opts }
}

// WithMaxBodySize limits request bodies to n bytes.
func WithMaxBodySize(n int64) Option {
	return func(s *Server) { s.maxBody = n }
}

// WithTimeout bounds the time spent in Graphviz per request.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// Server is the HTTP render service.
type Server struct {
	router   chi.Router
	cache    cache.Cache
	keyer    cache.Keyer
	ttl      time.Duration
	defaults dot.Options
	maxBody  int64
	timeout  time.Duration
}

// New creates a Server with all routes configured.
func New(opts ...Option) *Server {
	s := &Server{
		keyer:    cache.NewScopedKeyer(nil, "server:"),
		defaults: dot.Options{Directed: true},
		maxBody:  DefaultMaxBodySize,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/attributes", s.handleAttributes)
		r.Post("/render", s.handleRender)
	})

	s.router = r
	return s
}

// ServeHTTP implements the http.Handler interface, delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
