package scene

import (
	"image/color"
	"math"

	"github.com/san-kum/photosim/internal/spectrum"
)

// Surface receives drawing operations in logical coordinates.
type Surface interface {
	Clear(bg color.NRGBA)
	StrokeLine(l Line, width float64, c color.NRGBA)
	FillPolygon(p Polygon, c color.NRGBA)
}

// Frame is everything one paint depends on.
type Frame struct {
	Wavelength float64 // nm
	Intensity  float64 // 0-100
	Voltage    float64 // V
}

// Style selects the colours of the static parts of the drawing.
type Style struct {
	Background color.NRGBA
	Foreground color.NRGBA
}

var (
	LightStyle = Style{
		Background: color.NRGBA{0xee, 0xee, 0xee, 0xff},
		Foreground: color.NRGBA{0x00, 0x00, 0x00, 0xff},
	}
	DarkStyle = Style{
		Background: color.NRGBA{0x0a, 0x0a, 0x0a, 0xff},
		Foreground: color.NRGBA{0xb4, 0xb4, 0xb4, 0xff},
	}
)

// Polarity is the sign of the applied voltage as drawn next to the cathode.
type Polarity int

const (
	PolarityNone Polarity = iota
	PolarityMinus
	PolarityPlus
)

// PolarityOf returns the glyph drawn at the cathode wire. A positive anode
// voltage leaves the cathode negative.
func PolarityOf(voltage float64) Polarity {
	switch {
	case voltage > 0:
		return PolarityMinus
	case voltage < 0:
		return PolarityPlus
	}
	return PolarityNone
}

// Draw paints f with the light style.
func Draw(s Surface, f Frame) {
	DrawStyled(s, f, LightStyle)
}

// DrawStyled paints the device, the beam and the polarity glyph, in that order.
func DrawStyled(s Surface, f Frame, st Style) {
	s.Clear(st.Background)
	drawDevice(s, st)
	drawBeam(s, f, st)
	drawPolarity(s, f.Voltage, st)
}

func drawDevice(s Surface, st Style) {
	for _, l := range []Line{Cathode, Anode, CathodeWire, AnodeWire} {
		s.StrokeLine(l, plateStroke, st.Foreground)
	}
}

func drawBeam(s Surface, f Frame, st Style) {
	alpha := spectrum.BeamOpacity(f.Wavelength, f.Intensity)
	if alpha <= 0 {
		return
	}
	outline := st.Foreground
	outline.A = uint8(math.Round(float64(outline.A) * alpha))
	for _, e := range Beam.Edges() {
		s.StrokeLine(e, beamStroke, outline)
	}
	s.FillPolygon(Beam, spectrum.WavelengthToRGB(f.Wavelength).RGBA(alpha))
}

func drawPolarity(s Surface, voltage float64, st Style) {
	switch PolarityOf(voltage) {
	case PolarityMinus:
		s.StrokeLine(minusBar, glyphStroke, st.Foreground)
	case PolarityPlus:
		s.StrokeLine(minusBar, glyphStroke, st.Foreground)
		s.StrokeLine(plusBar, glyphStroke, st.Foreground)
	}
}
