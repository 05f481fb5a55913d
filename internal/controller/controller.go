// Package controller owns the experiment inputs, evaluates the physics model
// and pushes every derived value to a [Display].
package controller

import (
	"log/slog"
	"math"

	"github.com/san-kum/photosim/internal/photon"
)

// Slider ranges of the user controls.
const (
	MinIntensity  = 0
	MaxIntensity  = 100
	MinWavelength = 100
	MaxWavelength = 1000
	MinVoltage    = -10.0
	MaxVoltage    = 10.0
)

// Display receives one-way updates from the controller.
type Display interface {
	SetElementType(name string) error
	SetExitEnergy(eV float64)
	SetOutcomeCurrent(current photon.ExpNumber)
	SetPhotonEnergy(eV float64)
	SetLightIntensity(intensity int)
	SetWavelength(wavelength int)
	SetVoltage(voltage float64)
}

// Communicator is what a view calls when the user moves a control.
type Communicator interface {
	ChangeIntensity(intensity int)
	ChangeWavelength(wavelength int)
	ChangeVoltage(voltage float64)
	ChangeElement(name string) error
	Inputs() photon.Inputs
	Outcome() photon.Outcome
}

// Controller is the default Communicator.
type Controller struct {
	inputs  photon.Inputs
	outcome photon.Outcome
	display Display
	log     *slog.Logger
}

// New creates a controller with the given starting inputs. A nil logger
// uses slog.Default().
func New(in photon.Inputs, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	c := &Controller{inputs: clamp(in), log: log}
	c.outcome = photon.Evaluate(c.inputs)
	return c
}

// Attach connects a display and pushes the full current state to it.
func (c *Controller) Attach(d Display) error {
	c.display = d
	return c.pushAll()
}

func (c *Controller) Inputs() photon.Inputs { return c.inputs }

func (c *Controller) Outcome() photon.Outcome { return c.outcome }

func (c *Controller) ChangeIntensity(intensity int) {
	c.inputs.Intensity = float64(clampInt(intensity, MinIntensity, MaxIntensity))
	c.log.Debug("intensity changed", "intensity", c.inputs.Intensity)
	if c.display != nil {
		c.display.SetLightIntensity(int(c.inputs.Intensity))
	}
	c.update()
}

func (c *Controller) ChangeWavelength(wavelength int) {
	c.inputs.Wavelength = float64(clampInt(wavelength, MinWavelength, MaxWavelength))
	c.log.Debug("wavelength changed", "nm", c.inputs.Wavelength)
	if c.display != nil {
		c.display.SetWavelength(int(c.inputs.Wavelength))
	}
	c.update()
}

func (c *Controller) ChangeVoltage(voltage float64) {
	if math.IsNaN(voltage) {
		return
	}
	c.inputs.Voltage = math.Max(MinVoltage, math.Min(MaxVoltage, voltage))
	c.log.Debug("voltage changed", "volts", c.inputs.Voltage)
	if c.display != nil {
		c.display.SetVoltage(c.inputs.Voltage)
	}
	c.update()
}

func (c *Controller) ChangeElement(name string) error {
	m, err := photon.ParseMetal(name)
	if err != nil {
		c.log.Warn("element not changed", "name", name, "err", err)
		return err
	}
	c.inputs.Metal = m
	c.log.Debug("element changed", "metal", m)
	if c.display != nil {
		err = c.display.SetElementType(m.String())
	}
	// the outcome follows the inputs even when the display refused the name
	c.update()
	return err
}

// update re-evaluates the model and pushes the derived values.
func (c *Controller) update() {
	c.outcome = photon.Evaluate(c.inputs)
	if c.display == nil {
		return
	}
	c.display.SetPhotonEnergy(c.outcome.PhotonEnergy)
	c.display.SetExitEnergy(c.outcome.ExitEnergy)
	c.display.SetOutcomeCurrent(photon.NewExpNumber(c.outcome.Current))
}

func (c *Controller) pushAll() error {
	if c.display == nil {
		return nil
	}
	if err := c.display.SetElementType(c.inputs.Metal.String()); err != nil {
		return err
	}
	c.display.SetLightIntensity(int(c.inputs.Intensity))
	c.display.SetWavelength(int(c.inputs.Wavelength))
	c.display.SetVoltage(c.inputs.Voltage)
	c.update()
	return nil
}

func clamp(in photon.Inputs) photon.Inputs {
	in.Intensity = math.Max(MinIntensity, math.Min(MaxIntensity, in.Intensity))
	in.Wavelength = math.Max(MinWavelength, math.Min(MaxWavelength, in.Wavelength))
	in.Voltage = math.Max(MinVoltage, math.Min(MaxVoltage, in.Voltage))
	return in
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
