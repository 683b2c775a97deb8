// Package server implements the puzzgen HTTP preview service: a small chi
// application that renders puzzle outlines on demand, caches the rendered
// SVGs, and hands out share links for saved puzzles.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/puzzletools/puzzgen/pkg/cache"
	"github.com/puzzletools/puzzgen/pkg/store"
)

// renderTTL bounds how long rendered previews stay cached. Output is
// deterministic per key, so the TTL only limits storage, not staleness.
const renderTTL = 24 * time.Hour

// Server holds the service dependencies.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
	keyer  cache.Keyer
	store  store.Store
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithCache sets the render cache backend.
func WithCache(c cache.Cache) Option { return func(s *Server) { s.cache = c } }

// WithStore sets the saved-puzzle store backend.
func WithStore(st store.Store) Option { return func(s *Server) { s.store = st } }

// New creates a server. Defaults: default logger, no caching, in-memory
// store.
func New(opts ...Option) *Server {
	s := &Server{
		logger: log.Default(),
		cache:  cache.NewNullCache(),
		keyer:  cache.NewDefaultKeyer(),
		store:  store.NewMemoryStore(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/puzzle.svg", s.handlePuzzleSVG)
	r.Route("/puzzles", func(r chi.Router) {
		r.Get("/", s.handleListPuzzles)
		r.Post("/", s.handleSavePuzzle)
		r.Get("/{id}", s.handleGetPuzzle)
		r.Get("/{id}.svg", s.handleGetPuzzleSVG)
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
