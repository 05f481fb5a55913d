package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/photosim/internal/photon"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted lesson: a sequence of experiment settings.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single step in a scenario
type ScenarioStep struct {
	Label      string  `yaml:"label"`
	Metal      string  `yaml:"metal"`
	Wavelength float64 `yaml:"wavelength"`
	Intensity  float64 `yaml:"intensity"`
	Voltage    float64 `yaml:"voltage"`
}

// Inputs converts the step into model inputs.
func (s ScenarioStep) Inputs() (photon.Inputs, error) {
	m, err := photon.ParseMetal(s.Metal)
	if err != nil {
		return photon.Inputs{}, err
	}
	in := photon.Inputs{Metal: m, Wavelength: s.Wavelength, Intensity: s.Intensity, Voltage: s.Voltage}
	return in, in.Validate()
}

// StepResult pairs a step with what it produced.
type StepResult struct {
	Step    ScenarioStep
	Inputs  photon.Inputs
	Outcome photon.Outcome
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// RunScenario evaluates all steps in order. It stops at the first invalid
// step or when ctx is done, returning the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, log *slog.Logger) ([]StepResult, error) {
	if log == nil {
		log = slog.Default()
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		in, err := step.Inputs()
		if err != nil {
			return results, &StepError{Step: i + 1, Label: step.Label, Wrapped: err}
		}

		out := photon.Evaluate(in)
		log.Info("scenario step", "step", i+1, "of", len(scenario.Steps), "label", step.Label, "metal", in.Metal, "nm", in.Wavelength, "current", out.Current)
		results = append(results, StepResult{Step: step, Inputs: in, Outcome: out})
	}

	return results, nil
}

// SweepParam names the input varied by a sweep.
type SweepParam string

const (
	SweepVoltage    SweepParam = "voltage"
	SweepWavelength SweepParam = "wavelength"
	SweepIntensity  SweepParam = "intensity"
)

// Sweep varies one input across [Min,Max] while holding the others.
type Sweep struct {
	Base  photon.Inputs
	Param SweepParam
	Min   float64
	Max   float64
	Steps int
}

// SweepPoint is one sample of a sweep.
type SweepPoint struct {
	Value   float64
	Outcome photon.Outcome
}

func (s Sweep) validate() error {
	if s.Steps < 2 {
		return fmt.Errorf("%w: need at least 2 steps, got %d", ErrInvalidSweep, s.Steps)
	}
	if s.Max <= s.Min {
		return fmt.Errorf("%w: empty range [%g,%g]", ErrInvalidSweep, s.Min, s.Max)
	}
	switch s.Param {
	case SweepVoltage, SweepWavelength, SweepIntensity:
		return nil
	}
	return fmt.Errorf("%w: unknown parameter %q", ErrInvalidSweep, s.Param)
}

// RunSweep evaluates the model at Steps evenly spaced values.
func RunSweep(ctx context.Context, sweep Sweep) ([]SweepPoint, error) {
	if err := sweep.validate(); err != nil {
		return nil, err
	}

	results := make([]SweepPoint, 0, sweep.Steps)
	step := (sweep.Max - sweep.Min) / float64(sweep.Steps-1)

	for i := 0; i < sweep.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		val := sweep.Min + float64(i)*step
		in := sweep.Base
		switch sweep.Param {
		case SweepVoltage:
			in.Voltage = val
		case SweepWavelength:
			in.Wavelength = val
		case SweepIntensity:
			in.Intensity = val
		}
		if err := in.Validate(); err != nil {
			return results, fmt.Errorf("sweep %s=%g: %w", sweep.Param, val, err)
		}

		results = append(results, SweepPoint{Value: val, Outcome: photon.Evaluate(in)})
	}

	return results, nil
}

// Currents extracts the current of every point, e.g. for plotting.
func Currents(points []SweepPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Outcome.Current
	}
	return out
}
