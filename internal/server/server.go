// Package server exposes the generators over HTTP.
//
// # Routes
//
//	GET /health          liveness probe
//	GET /digraphs/{size} stream every digraph of the given size
//	GET /count/{size}    count the digraphs of the given size
//
// Streaming responses are written as they are generated and stop as soon as
// the client goes away. Counts are kept in an in-memory LRU cache for the
// life of the process.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/matzehuels/funkdigen/pkg/generate"
)

// Options configures a Server.
type Options struct {
	// MaxSize is the largest size a request may ask for.
	MaxSize int
	// CountCache is the number of counts kept in memory.
	CountCache int
	// Strategy is used when a request does not name one.
	Strategy generate.Strategy
	// Loopless is the default for the loopless query parameter.
	Loopless bool
}

// Server serves the generation API.
type Server struct {
	opts   Options
	logger *log.Logger
	counts *lru.Cache[countKey, countResult]
	router chi.Router
}

// New returns a server with its routes registered. A nil logger discards
// log output.
func New(opts Options, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(nopWriter{})
	}
	counts, err := lru.New[countKey, countResult](max(opts.CountCache, 1))
	if err != nil {
		return nil, err
	}
	s := &Server{opts: opts, logger: logger, counts: counts}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(chimw.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/digraphs/{size}", s.handleDigraphs)
	r.Get("/count/{size}", s.handleCount)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errNotFound)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully. Cleartext HTTP/2 is accepted alongside HTTP/1.1.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(s, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
