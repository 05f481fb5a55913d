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
	"time"

	"github.com/san-kum/photosim/internal/automation"
	"github.com/san-kum/photosim/internal/photon"
)

var ErrNoPoints = errors.New("storage: sweep has no points")

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
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Metal      string             `json:"metal"`
	Param      string             `json:"param"`
	Min        float64            `json:"min"`
	Max        float64            `json:"max"`
	Steps      int                `json:"steps"`
	Wavelength float64            `json:"wavelength"`
	Intensity  float64            `json:"intensity"`
	Voltage    float64            `json:"voltage"`
	Summary    map[string]float64 `json:"summary"`
}

var header = []string{"value", "photon_energy", "exit_energy", "kinetic_energy", "stopping_voltage", "current"}

func summarize(sweep automation.Sweep, points []automation.SweepPoint) map[string]float64 {
	info := photon.Info(sweep.Base.Metal)
	maxCurrent := 0.0
	for _, p := range points {
		if p.Outcome.Current > maxCurrent {
			maxCurrent = p.Outcome.Current
		}
	}
	return map[string]float64{
		"work_function":        info.WorkFunction,
		"threshold_wavelength": info.ThresholdWavelength(),
		"max_current":          maxCurrent,
	}
}

func (s *Store) Save(sweep automation.Sweep, points []automation.SweepPoint) (string, error) {
	if len(points) == 0 {
		return "", ErrNoPoints
	}

	now := time.Now()
	runID := fmt.Sprintf("%s_%s_%d", sweep.Base.Metal, sweep.Param, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  now,
		Metal:      sweep.Base.Metal.String(),
		Param:      string(sweep.Param),
		Min:        sweep.Min,
		Max:        sweep.Max,
		Steps:      len(points),
		Wavelength: sweep.Base.Wavelength,
		Intensity:  sweep.Base.Intensity,
		Voltage:    sweep.Base.Voltage,
		Summary:    summarize(sweep, points),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, p := range points {
		o := p.Outcome
		row := []string{
			strconv.FormatFloat(p.Value, 'f', 6, 64),
			strconv.FormatFloat(o.PhotonEnergy, 'f', 6, 64),
			strconv.FormatFloat(o.ExitEnergy, 'f', 6, 64),
			strconv.FormatFloat(o.KineticEnergy, 'f', 6, 64),
			strconv.FormatFloat(o.StoppingVoltage, 'f', 6, 64),
			strconv.FormatFloat(o.Current, 'e', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns all stored runs, oldest first.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadPoints(runID string) ([]automation.SweepPoint, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(header)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []automation.SweepPoint{}, nil
	}

	points := make([]automation.SweepPoint, 0, len(records)-1)
	for i, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("points.csv line %d: %w", i+2, err)
			}
			vals[j] = v
		}
		points = append(points, automation.SweepPoint{
			Value: vals[0],
			Outcome: photon.Outcome{
				PhotonEnergy:    vals[1],
				ExitEnergy:      vals[2],
				KineticEnergy:   vals[3],
				StoppingVoltage: vals[4],
				Current:         vals[5],
			},
		})
	}

	return points, nil
}
