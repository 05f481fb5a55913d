package automation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/photosim/internal/photon"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

const lesson = `name: threshold
description: light below the threshold frees nothing
steps:
  - label: red on sodium
    metal: sodium
    wavelength: 650
    intensity: 100
    voltage: 2
  - label: violet on sodium
    metal: Na
    wavelength: 400
    intensity: 100
    voltage: 2
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lesson.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, lesson))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sc.Name != "threshold" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario %+v", sc)
	}

	results, err := RunScenario(context.Background(), sc, quiet)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Outcome.Current != 0 {
		t.Error("red light should not eject electrons from sodium")
	}
	if results[1].Outcome.Current == 0 {
		t.Error("violet light should eject electrons from sodium")
	}
}

func TestRunScenario_InvalidStep(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{
		{Metal: "sodium", Wavelength: 400, Intensity: 50},
		{Metal: "vibranium", Wavelength: 400, Intensity: 50},
	}}

	results, err := RunScenario(context.Background(), sc, quiet)
	if !errors.Is(err, photon.ErrUnknownMetal) {
		t.Errorf("expected ErrUnknownMetal, got %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected partial results, got %d", len(results))
	}
}

func TestRunScenario_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc := &Scenario{Steps: []ScenarioStep{{Metal: "sodium", Wavelength: 400}}}
	if _, err := RunScenario(ctx, sc, quiet); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunSweep_Voltage(t *testing.T) {
	sweep := Sweep{
		Base:  photon.Inputs{Metal: photon.Cesium, Wavelength: 400, Intensity: 100},
		Param: SweepVoltage,
		Min:   -2,
		Max:   2,
		Steps: 41,
	}

	points, err := RunSweep(context.Background(), sweep)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(points) != 41 {
		t.Fatalf("expected 41 points, got %d", len(points))
	}
	if points[0].Value != -2 || math.Abs(points[40].Value-2) > 1e-12 {
		t.Errorf("range not covered: %v..%v", points[0].Value, points[40].Value)
	}

	currents := Currents(points)
	if currents[0] != 0 {
		t.Errorf("expected zero current at -2 V, got %v", currents[0])
	}
	if currents[40] != currents[30] {
		t.Error("current should saturate at positive voltage")
	}
	for i := 1; i < len(currents); i++ {
		if currents[i] < currents[i-1] {
			t.Fatalf("I-V curve not monotonic at %v V", points[i].Value)
		}
	}
}

func TestRunSweep_Wavelength(t *testing.T) {
	sweep := Sweep{
		Base:  photon.Inputs{Metal: photon.Sodium, Intensity: 100},
		Param: SweepWavelength,
		Min:   300,
		Max:   700,
		Steps: 5,
	}

	points, err := RunSweep(context.Background(), sweep)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if points[0].Outcome.Current == 0 || points[4].Outcome.Current != 0 {
		t.Error("expected emission at 300 nm only below the sodium threshold")
	}
}

func TestRunSweep_Invalid(t *testing.T) {
	tests := []Sweep{
		{Param: SweepVoltage, Min: 0, Max: 1, Steps: 1},
		{Param: SweepVoltage, Min: 1, Max: 1, Steps: 5},
		{Param: "metal", Min: 0, Max: 1, Steps: 5},
	}
	for _, s := range tests {
		if _, err := RunSweep(context.Background(), s); !errors.Is(err, ErrInvalidSweep) {
			t.Errorf("sweep %+v: expected ErrInvalidSweep, got %v", s, err)
		}
	}
}

func TestRunSweep_InvalidInputs(t *testing.T) {
	sweep := Sweep{
		Base:  photon.Inputs{Metal: photon.Sodium, Wavelength: 500},
		Param: SweepIntensity,
		Min:   50,
		Max:   150,
		Steps: 3,
	}
	points, err := RunSweep(context.Background(), sweep)
	if !errors.Is(err, photon.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if len(points) != 2 {
		t.Errorf("expected the valid prefix, got %d points", len(points))
	}
}

func TestRunScenario_StepError(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{
		{Label: "bad", Metal: "sodium", Wavelength: -1, Intensity: 50},
	}}

	_, err := RunScenario(context.Background(), sc, quiet)
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %T", err)
	}
	if stepErr.Step != 1 || stepErr.Label != "bad" {
		t.Errorf("unexpected step error %+v", stepErr)
	}
	if !errors.Is(err, photon.ErrInvalidInput) {
		t.Errorf("expected wrapped ErrInvalidInput, got %v", err)
	}
	if stepErr.Error() != "step 1 (bad): "+stepErr.Wrapped.Error() {
		t.Errorf("unexpected message %q", stepErr.Error())
	}
}

func TestCompareMetals(t *testing.T) {
	sweep := Sweep{
		Base:  photon.Inputs{Wavelength: 300, Intensity: 100},
		Param: SweepWavelength,
		Min:   200,
		Max:   700,
		Steps: 51,
	}
	metals := []photon.Metal{photon.Cesium, photon.Zinc, photon.Platinum}

	results, err := CompareMetals(context.Background(), sweep, metals)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if len(results) != len(metals) {
		t.Fatalf("expected %d series, got %d", len(metals), len(results))
	}

	// a higher work function means a shorter threshold, so fewer emitting points
	emitting := make([]int, len(results))
	for i, series := range results {
		if len(series) != 51 {
			t.Fatalf("series %d has %d points", i, len(series))
		}
		for _, p := range series {
			if p.Outcome.Current > 0 {
				emitting[i]++
			}
		}
	}
	if !(emitting[0] > emitting[1] && emitting[1] > emitting[2]) {
		t.Errorf("expected emission to shrink with work function, got %v", emitting)
	}
}

func TestCompareMetals_Invalid(t *testing.T) {
	_, err := CompareMetals(context.Background(), Sweep{Param: SweepVoltage, Steps: 1}, []photon.Metal{photon.Zinc})
	if !errors.Is(err, ErrInvalidSweep) {
		t.Errorf("expected ErrInvalidSweep, got %v", err)
	}
}
