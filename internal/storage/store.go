// Package storage keeps recorded widget playbacks on disk, one directory per
// run holding metadata.json and frames.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fegerar/folio/internal/gallery"
	"github.com/google/uuid"
)

var (
	ErrRunNotFound  = errors.New("storage: run not found")
	ErrEmptyRun     = errors.New("storage: recording has no frames")
	ErrInvalidRunID = errors.New("storage: invalid run id")
	ErrCorruptRun   = errors.New("storage: malformed frames file")
)

// RunError ties a failure to the run it happened on.
type RunError struct {
	ID      string
	Wrapped error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run %s: %v", e.ID, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Widget    string             `json:"widget"`
	Timestamp time.Time          `json:"timestamp"`
	Speed     string             `json:"speed"`
	Cycles    int                `json:"cycles"`
	Frames    int                `json:"frames"`
	Columns   []string           `json:"columns"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Table is the decoded content of frames.csv.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// Column returns one column by header name.
func (t Table) Column(name string) ([]float64, bool) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	out := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			out = append(out, row[idx])
		}
	}
	return out, true
}

func columns(rec *gallery.Recording) []string {
	cols := []string{"step", "elapsed_ms"}
	first := rec.Frames[0]
	for _, p := range first.Params {
		cols = append(cols, p.Name)
	}
	if first.HasMetric {
		cols = append(cols, first.Metric.Name)
	}
	return cols
}

func summarize(rec *gallery.Recording) map[string]float64 {
	out := map[string]float64{}
	first := rec.Frames[0]
	if !first.HasMetric {
		return out
	}
	name := first.Metric.Name
	lo, hi := first.Metric.Value, first.Metric.Value
	for _, f := range rec.Frames {
		if f.Metric.Value < lo {
			lo = f.Metric.Value
		}
		if f.Metric.Value > hi {
			hi = f.Metric.Value
		}
	}
	out[name+"_min"] = lo
	out[name+"_max"] = hi
	out[name+"_final"] = rec.Frames[len(rec.Frames)-1].Metric.Value
	return out
}

func (s *Store) Save(rec *gallery.Recording) (string, error) {
	if rec == nil || len(rec.Frames) == 0 {
		return "", ErrEmptyRun
	}

	runID := fmt.Sprintf("%s_%s", rec.Widget, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	cols := columns(rec)
	meta := RunMetadata{
		ID:        runID,
		Widget:    rec.Widget,
		Timestamp: time.Now(),
		Speed:     rec.Speed.String(),
		Cycles:    rec.Cycles,
		Frames:    len(rec.Frames),
		Columns:   cols,
		Metrics:   summarize(rec),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", &RunError{ID: runID, Wrapped: err}
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(cols); err != nil {
		return "", &RunError{ID: runID, Wrapped: err}
	}
	for _, f := range rec.Frames {
		row := []string{
			strconv.Itoa(f.Step),
			strconv.FormatFloat(float64(f.Elapsed.Microseconds())/1000, 'f', 3, 64),
		}
		for _, p := range f.Params {
			row = append(row, strconv.FormatFloat(p.Value, 'f', 6, 64))
		}
		if f.HasMetric {
			row = append(row, strconv.FormatFloat(f.Metric.Value, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", &RunError{ID: runID, Wrapped: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", &RunError{ID: runID, Wrapped: err}
	}

	return runID, nil
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

// runDir resolves a run id to its directory. Ids are single path elements so
// they cannot reach outside the data directory.
func (s *Store) runDir(runID string) (string, error) {
	if runID == "" || runID == "." || runID == ".." ||
		strings.ContainsAny(runID, `/\`) || filepath.Base(runID) != runID {
		return "", &RunError{ID: runID, Wrapped: ErrInvalidRunID}
	}
	return filepath.Join(s.baseDir, runID), nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &RunError{ID: runID, Wrapped: ErrRunNotFound}
		}
		return nil, &RunError{ID: runID, Wrapped: err}
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, &RunError{ID: runID, Wrapped: err}
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) (*Table, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(dir, "frames.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &RunError{ID: runID, Wrapped: ErrRunNotFound}
		}
		return nil, &RunError{ID: runID, Wrapped: err}
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, &RunError{ID: runID, Wrapped: err}
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	t := &Table{Columns: records[0], Rows: make([][]float64, 0, len(records)-1)}
	for i, record := range records[1:] {
		row := make([]float64, 0, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				col := strconv.Itoa(j)
				if j < len(t.Columns) {
					col = t.Columns[j]
				}
				return nil, &RunError{ID: runID, Wrapped: fmt.Errorf("%w: line %d column %s: %q", ErrCorruptRun, i+2, col, field)}
			}
			row = append(row, v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
