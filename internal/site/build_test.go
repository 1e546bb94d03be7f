package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fegerar/folio/internal/config"
	"github.com/fegerar/folio/internal/gallery"
	"github.com/fegerar/folio/internal/logging"
)

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	res, err := Build(context.Background(), dir, config.DefaultConfig(), gallery.NewRegistry(), logging.Discard())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// index plus 3 tree fields, 5+5 regression frames and 4 perceptron frames
	if len(res.Files) != 18 {
		t.Errorf("expected 18 files, got %d", len(res.Files))
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "<!DOCTYPE html>") {
		t.Error("index.html is not a document")
	}

	frame, err := os.ReadFile(filepath.Join(dir, "widgets", "linear_regression", "4.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(frame), `y1="50.00"`) {
		t.Error("final linear frame should start the line at y=50")
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Speed = "3x"
	if _, err := Build(context.Background(), t.TempDir(), cfg, gallery.NewRegistry(), logging.Discard()); err == nil {
		t.Error("expected validation error")
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Build(ctx, t.TempDir(), config.DefaultConfig(), gallery.NewRegistry(), logging.Discard()); err == nil {
		t.Error("expected context error")
	}
}
