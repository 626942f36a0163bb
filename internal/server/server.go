// Package server exposes the navigation tree over HTTP.
//
// Every API request rebuilds the tree from disk, so responses always reflect
// the current content directory. With watching enabled, content changes are
// pushed to browsers over a server-sent events stream.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leapstack-labs/docnav/internal/docs"
	"github.com/leapstack-labs/docnav/internal/server/notifier"
	"golang.org/x/sync/errgroup"
)

// NavBuilder builds a navigation tree. *docs.Builder satisfies it.
type NavBuilder interface {
	Build(ctx context.Context) (*docs.Navigation, error)
}

// Config holds configuration for the API server.
type Config struct {
	Builder    NavBuilder
	ContentDir string // watched when Watch is set
	Host       string
	Port       int
	Watch      bool
	Logger     *slog.Logger
}

// Server serves the navigation API.
type Server struct {
	builder    NavBuilder
	contentDir string
	addr       string
	watch      bool
	logger     *slog.Logger
	notifier   *notifier.Notifier
	metrics    *Metrics
	handler    http.Handler
}

// New creates a server instance.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		builder:    cfg.Builder,
		contentDir: cfg.ContentDir,
		addr:       net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		watch:      cfg.Watch,
		logger:     logger,
		notifier:   notifier.New(),
		metrics:    NewMetrics(),
	}
	s.handler = s.routes()
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Notifier returns the server's notifier for live-reload events.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

func (s *Server) routes() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		s.requestLogger,
		middleware.Recoverer,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Compress(5))
		r.Get("/nav", s.handleNav)
		r.Get("/pages", s.handlePages)
		r.Get("/find", s.handleFind)
		r.Get("/active", s.handleActive)
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Get("/__reload", s.handleReload)

	return r
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting API server", "addr", "http://"+s.addr)

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch {
		w, err := newContentWatcher(s.contentDir)
		if err != nil {
			return fmt.Errorf("failed to watch content directory: %w", err)
		}
		eg.Go(func() error {
			return s.watchLoop(egctx, w)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down API server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// build runs one fresh build and records it.
func (s *Server) build(ctx context.Context) (*docs.Navigation, error) {
	start := time.Now()
	nav, err := s.builder.Build(ctx)
	s.metrics.ObserveBuild(start, nav, err)
	if err != nil {
		s.logger.Error("navigation build failed", "error", err)
		return nil, err
	}
	return nav, nil
}

func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	nav, err := s.build(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, nav)
}

func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	nav, err := s.build(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, nav.Pages())
}

type crumb struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type findResponse struct {
	Item  docs.NavItem `json:"item"`
	Trail []crumb      `json:"trail"`
}

func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing path parameter"))
		return
	}

	nav, err := s.build(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	item, ok := nav.Find(path)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %s", docs.ErrNotFound, path))
		return
	}

	trail := nav.ActiveTrail(path)
	resp := findResponse{Item: *item, Trail: make([]crumb, 0, len(trail))}
	for _, t := range trail {
		resp.Trail = append(resp.Trail, crumb{Label: t.Label, Href: t.Href})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleActive maps each top-level href to whether it is, or contains, the
// current path. Sidebars use it to decide which sections to open.
func (s *Server) handleActive(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing path parameter"))
		return
	}

	nav, err := s.build(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	active := make(map[string]bool, len(nav.Items))
	for _, item := range nav.Items {
		active[item.Href] = docs.IsActiveOrHasActiveChild(item, path)
	}
	writeJSON(w, http.StatusOK, active)
}

// handleReload streams reload events to the browser.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	events, cancel := s.notifier.Subscribe()
	defer cancel()

	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			_, _ = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev, ev)
			flusher.Flush()
		}
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		}()
		next.ServeHTTP(ww, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
