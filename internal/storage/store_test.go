package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fegerar/folio/internal/gallery"
	"github.com/fegerar/folio/internal/models"
	"github.com/fegerar/folio/internal/playback"
)

func testRecording() *gallery.Recording {
	w := models.LinearRegression{}
	rec := &gallery.Recording{Widget: w.Name(), Speed: playback.Double, Cycles: 1}
	for i := 0; i <= w.Frames(); i++ {
		step := i % w.Frames()
		m, _ := w.Metric(step)
		rec.Frames = append(rec.Frames, gallery.Frame{
			Step:      step,
			Elapsed:   time.Duration(i) * time.Second,
			Params:    w.Params(step),
			Metric:    m,
			HasMetric: true,
		})
	}
	return rec
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testRecording())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "linear_regression_") {
		t.Errorf("unexpected run id %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Speed != "2x" || meta.Frames != 6 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Metrics["loss_final"] != 5625 || meta.Metrics["loss_min"] != 0 {
		t.Errorf("unexpected summary %v", meta.Metrics)
	}

	table, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	expectedCols := []string{"step", "elapsed_ms", "m", "c", "loss"}
	if strings.Join(table.Columns, ",") != strings.Join(expectedCols, ",") {
		t.Errorf("unexpected columns %v", table.Columns)
	}
	if len(table.Rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(table.Rows))
	}

	loss, ok := table.Column("loss")
	if !ok || loss[4] != 0 || loss[1] != 1556.25 {
		t.Errorf("unexpected loss column %v", loss)
	}
	if _, ok := table.Column("missing"); ok {
		t.Error("missing column should report false")
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(testRecording()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreMissingRun(t *testing.T) {
	st := New(t.TempDir())

	_, err := st.Load("nope")
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	var runErr *RunError
	if !errors.As(err, &runErr) || runErr.ID != "nope" {
		t.Errorf("expected RunError for nope, got %v", err)
	}

	if _, err := st.Save(&gallery.Recording{}); !errors.Is(err, ErrEmptyRun) {
		t.Errorf("expected ErrEmptyRun, got %v", err)
	}
}

func TestStoreExport(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save(testRecording())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export json: %v", err)
	}
	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.ID != runID || len(data.Rows) != 6 {
		t.Errorf("unexpected export %+v", data.RunMetadata)
	}

	buf.Reset()
	if err := st.ExportCSV(&buf, runID); err != nil {
		t.Fatalf("export csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 || lines[0] != "step,elapsed_ms,m,c,loss" {
		t.Errorf("unexpected csv %q", buf.String())
	}
}

func TestStoreRejectsMalformedFrames(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	runDir := filepath.Join(dir, "broken")
	if err := os.MkdirAll(runDir, 0755); err != nil {
		t.Fatal(err)
	}
	data := "step,elapsed_ms,m,c,loss\n0,0,,150,5625\n"
	if err := os.WriteFile(filepath.Join(runDir, "frames.csv"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := st.LoadFrames("broken")
	if !errors.Is(err, ErrCorruptRun) {
		t.Fatalf("expected ErrCorruptRun, got %v", err)
	}
	if !strings.Contains(err.Error(), "column m") {
		t.Errorf("error should name the column: %v", err)
	}
}

func TestStoreRejectsPathLikeIDs(t *testing.T) {
	dir := t.TempDir()
	st := New(filepath.Join(dir, "runs"))
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	// a run directory outside the store
	outside := filepath.Join(dir, "x")
	if err := os.MkdirAll(outside, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outside, "metadata.json"), []byte(`{"id":"x"}`), 0644); err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"../x", "..", ".", "", "a/b", `a\b`} {
		if _, err := st.Load(id); !errors.Is(err, ErrInvalidRunID) {
			t.Errorf("Load(%q): expected ErrInvalidRunID, got %v", id, err)
		}
		if _, err := st.LoadFrames(id); !errors.Is(err, ErrInvalidRunID) {
			t.Errorf("LoadFrames(%q): expected ErrInvalidRunID, got %v", id, err)
		}
	}
	if err := st.ExportCSV(&bytes.Buffer{}, "../x"); !errors.Is(err, ErrInvalidRunID) {
		t.Errorf("ExportCSV: expected ErrInvalidRunID, got %v", err)
	}
}
