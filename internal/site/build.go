package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fegerar/folio/internal/config"
	"github.com/fegerar/folio/internal/export"
	"github.com/fegerar/folio/internal/gallery"
	"golang.org/x/sync/errgroup"
)

// maxWriters bounds concurrent file writes during a build.
const maxWriters = 8

// BuildResult lists what a build wrote, relative to its output directory.
type BuildResult struct {
	Files []string
}

// Build writes index.html and every frame of every configured widget under
// dir.
func Build(ctx context.Context, dir string, cfg *config.Config, reg *gallery.Registry, logger *log.Logger) (*BuildResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	page, err := NewPage(cfg, reg)
	if err != nil {
		return nil, err
	}
	html, err := RenderBytes(page)
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	type job struct {
		path string
		data func() ([]byte, error)
	}
	jobs := []job{{path: "index.html", data: func() ([]byte, error) { return html, nil }}}
	for _, name := range cfg.Widgets {
		w, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		for step := 0; step < w.Frames(); step++ {
			jobs = append(jobs, job{
				path: FramePath(name, step),
				data: func() ([]byte, error) {
					svg, err := export.WidgetSVG(w, step, export.Options{})
					return []byte(svg), err
				},
			})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWriters)
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := j.data()
			if err != nil {
				return fmt.Errorf("%s: %w", j.path, err)
			}
			target := filepath.Join(dir, filepath.FromSlash(j.path))
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(target, data, 0644); err != nil {
				return err
			}
			logger.Debug("wrote", "file", j.path, "bytes", len(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &BuildResult{Files: make([]string, len(jobs))}
	for i, j := range jobs {
		res.Files[i] = j.path
	}
	logger.Info("site built", "dir", dir, "files", len(res.Files))
	return res, nil
}
