package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	RunMetadata
	Rows [][]float64 `json:"rows"`
}

// ExportJSON writes a run's metadata and frames as one indented document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	table, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Rows: table.Rows})
}

// ExportCSV re-encodes the frames table as CSV.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	table, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}
	return writeCSV(w, table)
}
