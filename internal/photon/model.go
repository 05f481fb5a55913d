package photon

import (
	"fmt"
	"math"
)

// Inputs are the user-controlled experiment parameters.
type Inputs struct {
	Metal      Metal
	Wavelength float64 // nm
	Intensity  float64 // 0-100
	Voltage    float64 // anode relative to cathode, V
}

// Validate reports whether the inputs are finite and within their domains.
func (in Inputs) Validate() error {
	for _, v := range []float64{in.Wavelength, in.Intensity, in.Voltage} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidInput
		}
	}
	if in.Wavelength <= 0 {
		return fmt.Errorf("%w: wavelength %.1f nm", ErrInvalidInput, in.Wavelength)
	}
	if in.Intensity < 0 || in.Intensity > 100 {
		return fmt.Errorf("%w: intensity %.1f", ErrInvalidInput, in.Intensity)
	}
	if in.Metal < 0 || int(in.Metal) >= len(metals) {
		return ErrUnknownMetal
	}
	return nil
}

// Outcome holds every derived quantity of one experiment setting.
type Outcome struct {
	PhotonEnergy    float64 // eV
	ExitEnergy      float64 // work function, eV
	KineticEnergy   float64 // maximum kinetic energy of emitted electrons, eV
	StoppingVoltage float64 // V
	Current         float64 // A
}

// Emitting reports whether photons are energetic enough to free electrons.
func (o Outcome) Emitting() bool {
	return o.PhotonEnergy > o.ExitEnergy
}

// PhotonEnergy returns the energy in eV of a photon of the given wavelength.
func PhotonEnergy(wavelength float64) float64 {
	if wavelength <= 0 {
		return 0
	}
	return HC / wavelength
}

// StoppingVoltage is the retarding voltage at which photocurrent vanishes.
func StoppingVoltage(photonEnergy, workFunction float64) float64 {
	return math.Max(0, photonEnergy-workFunction)
}

// Current returns the photocurrent in amperes.
func Current(in Inputs) float64 {
	e := PhotonEnergy(in.Wavelength)
	w := Info(in.Metal).WorkFunction
	if e <= w {
		return 0
	}
	saturation := SaturationCurrent * math.Max(0, math.Min(100, in.Intensity)) / 100
	if in.Voltage >= 0 {
		return saturation
	}
	stop := StoppingVoltage(e, w)
	retard := -in.Voltage
	if retard >= stop {
		return 0
	}
	return saturation * (1 - retard/stop)
}

// Evaluate computes the outcome of an experiment setting.
func Evaluate(in Inputs) Outcome {
	e := PhotonEnergy(in.Wavelength)
	w := Info(in.Metal).WorkFunction
	stop := StoppingVoltage(e, w)
	return Outcome{
		PhotonEnergy:    e,
		ExitEnergy:      w,
		KineticEnergy:   stop,
		StoppingVoltage: stop,
		Current:         Current(in),
	}
}
