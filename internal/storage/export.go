package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/photosim/internal/automation"
)

type ExportData struct {
	RunMetadata
	Values   []float64 `json:"values"`
	Currents []float64 `json:"currents"`
}

// ExportJSON writes a stored run, metadata and curve, as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	points, err := s.LoadPoints(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		RunMetadata: *meta,
		Values:      make([]float64, len(points)),
		Currents:    automation.Currents(points),
	}
	for i, p := range points {
		data.Values[i] = p.Value
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
