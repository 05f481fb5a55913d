package photon

import (
	"errors"
	"math"
	"testing"
)

func TestPhotonEnergy(t *testing.T) {
	tests := []struct {
		wl   float64
		want float64
	}{
		{1239.84198, 1.0},
		{500, 2.4797},
		{250, 4.9594},
		{0, 0},
		{-10, 0},
	}

	for _, tt := range tests {
		if got := PhotonEnergy(tt.wl); math.Abs(got-tt.want) > 1e-3 {
			t.Errorf("PhotonEnergy(%v) = %v, want %v", tt.wl, got, tt.want)
		}
	}
}

func TestStoppingVoltage(t *testing.T) {
	if got := StoppingVoltage(3.0, 2.0); got != 1.0 {
		t.Errorf("expected 1.0, got %v", got)
	}
	if got := StoppingVoltage(2.0, 3.0); got != 0 {
		t.Errorf("expected 0 below threshold, got %v", got)
	}
}

func TestCurrent(t *testing.T) {
	// sodium, 400 nm: E ≈ 3.0996 eV, V0 ≈ 0.7396 V
	base := Inputs{Metal: Sodium, Wavelength: 400, Intensity: 100}

	tests := []struct {
		name    string
		mutate  func(*Inputs)
		want    float64
		epsilon float64
	}{
		{"saturation", func(in *Inputs) {}, SaturationCurrent, 1e-15},
		{"accelerating", func(in *Inputs) { in.Voltage = 5 }, SaturationCurrent, 1e-15},
		{"half intensity", func(in *Inputs) { in.Intensity = 50 }, SaturationCurrent / 2, 1e-15},
		{"no light", func(in *Inputs) { in.Intensity = 0 }, 0, 0},
		{"below threshold", func(in *Inputs) { in.Wavelength = 700 }, 0, 0},
		{"past stopping voltage", func(in *Inputs) { in.Voltage = -1 }, 0, 0},
		{"half way to stopping", func(in *Inputs) { in.Voltage = -StoppingVoltage(PhotonEnergy(400), 2.36) / 2 }, SaturationCurrent / 2, 1e-12},
		{"platinum in visible", func(in *Inputs) { in.Metal = Platinum }, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			if got := Current(in); math.Abs(got-tt.want) > tt.epsilon {
				t.Errorf("Current() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurrent_DecreasesWithRetardingVoltage(t *testing.T) {
	in := Inputs{Metal: Cesium, Wavelength: 300, Intensity: 80}
	prev := math.Inf(1)
	for v := 0.0; v >= -5; v -= 0.1 {
		in.Voltage = v
		got := Current(in)
		if got > prev {
			t.Fatalf("current rose from %v to %v at %v V", prev, got, v)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("expected zero current at -5 V, got %v", prev)
	}
}

func TestEvaluate(t *testing.T) {
	out := Evaluate(Inputs{Metal: Zinc, Wavelength: 200, Intensity: 100})

	if out.ExitEnergy != 4.33 {
		t.Errorf("expected zinc work function 4.33, got %v", out.ExitEnergy)
	}
	if !out.Emitting() {
		t.Error("200 nm light should eject electrons from zinc")
	}
	if math.Abs(out.KineticEnergy-(out.PhotonEnergy-4.33)) > 1e-12 {
		t.Errorf("kinetic energy %v inconsistent with photon energy %v", out.KineticEnergy, out.PhotonEnergy)
	}
	if math.Abs(out.Current-SaturationCurrent) > 1e-15 {
		t.Errorf("expected saturation current, got %v", out.Current)
	}
}

func TestInputsValidate(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		ok   bool
	}{
		{"valid", Inputs{Metal: Sodium, Wavelength: 500, Intensity: 10}, true},
		{"nan", Inputs{Wavelength: math.NaN()}, false},
		{"zero wavelength", Inputs{Wavelength: 0}, false},
		{"intensity too high", Inputs{Wavelength: 500, Intensity: 101}, false},
		{"bad metal", Inputs{Metal: Metal(99), Wavelength: 500}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestParseMetal(t *testing.T) {
	tests := []struct {
		in   string
		want Metal
	}{
		{"sodium", Sodium},
		{"Na", Sodium},
		{" ZINC ", Zinc},
		{"aluminum", Aluminium},
		{"pt", Platinum},
	}

	for _, tt := range tests {
		got, err := ParseMetal(tt.in)
		if err != nil {
			t.Fatalf("ParseMetal(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMetal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseMetal("unobtainium"); !errors.Is(err, ErrUnknownMetal) {
		t.Errorf("expected ErrUnknownMetal, got %v", err)
	}
}

func TestMetals_SortedByWorkFunction(t *testing.T) {
	ms := Metals()
	for i := 1; i < len(ms); i++ {
		if ms[i].WorkFunction < ms[i-1].WorkFunction {
			t.Errorf("%s (%v) listed after %s (%v)", ms[i].Name, ms[i].WorkFunction, ms[i-1].Name, ms[i-1].WorkFunction)
		}
		if Info(ms[i].Metal) != ms[i] {
			t.Errorf("Info(%v) does not match table entry", ms[i].Metal)
		}
	}
}

func TestThresholdWavelength(t *testing.T) {
	th := Info(Cesium).ThresholdWavelength()
	if math.Abs(PhotonEnergy(th)-2.14) > 1e-9 {
		t.Errorf("threshold %v nm does not match work function", th)
	}
}
