package scene

import (
	"github.com/san-kum/photosim/internal/photon"
)

// DefaultWavelength is the wavelength shown before the user moves the slider.
const DefaultWavelength = 500

// Readouts are values computed elsewhere and shown next to the drawing.
type Readouts struct {
	ExitEnergy   float64 // eV
	PhotonEnergy float64 // eV
	Current      photon.ExpNumber
}

// Panel is the drawing area of the main window. Every setter marks it dirty;
// Render repaints only while dirty.
type Panel struct {
	frame    Frame
	readouts Readouts
	style    Style
	dirty    bool
}

func NewPanel(style Style) *Panel {
	return &Panel{
		frame: Frame{Wavelength: DefaultWavelength},
		style: style,
		dirty: true,
	}
}

func (p *Panel) SetLightIntensity(intensity int) {
	p.frame.Intensity = float64(intensity)
	p.dirty = true
}

func (p *Panel) SetWavelength(wavelength int) {
	p.frame.Wavelength = float64(wavelength)
	p.dirty = true
}

func (p *Panel) SetVoltage(voltage float64) {
	p.frame.Voltage = voltage
	p.dirty = true
}

func (p *Panel) SetExitEnergy(eV float64) {
	p.readouts.ExitEnergy = eV
	p.dirty = true
}

func (p *Panel) SetPhotonEnergy(eV float64) {
	p.readouts.PhotonEnergy = eV
	p.dirty = true
}

func (p *Panel) SetCurrent(current photon.ExpNumber) {
	p.readouts.Current = current
	p.dirty = true
}

func (p *Panel) SetStyle(style Style) {
	p.style = style
	p.dirty = true
}

// Invalidate forces the next Render to repaint, e.g. after a resize.
func (p *Panel) Invalidate() {
	p.dirty = true
}

func (p *Panel) Dirty() bool { return p.dirty }

func (p *Panel) Frame() Frame { return p.frame }

func (p *Panel) Readouts() Readouts { return p.readouts }

func (p *Panel) Style() Style { return p.style }

// Render paints the panel onto s if anything changed since the last call
// and reports whether it did.
func (p *Panel) Render(s Surface) bool {
	if !p.dirty {
		return false
	}
	DrawStyled(s, p.frame, p.style)
	p.dirty = false
	return true
}
