package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fegerar/folio/internal/config"
	"github.com/fegerar/folio/internal/export"
	"github.com/fegerar/folio/internal/gallery"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Server serves the rendered page and individual widget frames. With a
// config path it can reload the page whenever that file changes.
type Server struct {
	path string
	reg  *gallery.Registry
	log  *log.Logger

	mu   sync.RWMutex
	cfg  *config.Config
	html []byte
}

// NewServer renders cfg once. path is the file cfg came from, or "" when it
// is the built-in default.
func NewServer(cfg *config.Config, path string, reg *gallery.Registry, logger *log.Logger) (*Server, error) {
	s := &Server{path: path, reg: reg, log: logger}
	if err := s.apply(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) apply(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	page, err := NewPage(cfg, s.reg)
	if err != nil {
		return err
	}
	html, err := RenderBytes(page)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg, s.html = cfg, html
	s.mu.Unlock()
	return nil
}

// Reload re-reads the config file. A broken file keeps the last good page.
func (s *Server) Reload() error {
	if s.path == "" {
		return nil
	}
	cfg, err := config.Load(s.path)
	if err != nil {
		return err
	}
	if err := s.apply(cfg); err != nil {
		return err
	}
	s.log.Info("config reloaded", "path", s.path)
	return nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /index.html", s.handleIndex)
	mux.HandleFunc("GET /widgets/{name}/{frame}", s.handleFrame)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	html := s.html
	s.mu.RUnlock()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}

// handleFrame serves /widgets/{name}/{step}.svg for the widgets on the page.
// The query accepts field=<name> for the decision tree and values=1 for the
// perceptron.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	raw, ok := strings.CutSuffix(r.PathValue("frame"), ".svg")
	if !ok {
		http.NotFound(w, r)
		return
	}
	step, err := strconv.Atoi(raw)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !slices.Contains(s.Config().Widgets, name) {
		http.NotFound(w, r)
		return
	}
	widget, err := s.reg.Get(name)
	if err != nil || step < 0 || step >= widget.Frames() {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	svg, err := export.WidgetSVG(widget, step, export.Options{
		ShowValues: q.Get("values") != "",
		Field:      q.Get("field"),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(svg))
}

// Watch reloads the page on writes to the config file until ctx is done.
// The parent directory is watched so editors that replace the file are
// still noticed.
func (s *Server) Watch(ctx context.Context) error {
	if s.path == "" {
		return errors.New("site: no config file to watch")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watching %s: %w", s.path, err)
	}
	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.log.Warn("reload failed, keeping previous page", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watcher error", "err", err)
		}
	}
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, watch bool) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if watch {
		g.Go(func() error { return s.Watch(ctx) })
	}
	return g.Wait()
}

// Config returns the config currently served.
func (s *Server) Config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}
