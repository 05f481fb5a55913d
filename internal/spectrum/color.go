package spectrum

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	gamma      = 0.80
	maxChannel = 255.0

	// VisibleMin and VisibleMax bound the band in which the eye responds at all.
	VisibleMin = 380.0
	VisibleMax = 781.0

	// dimFactor is the visibility of light the eye cannot see.
	dimFactor = 0.1
	// edgeFactor is the visibility at the outer end of each edge ramp.
	edgeFactor = 0.3
)

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// RGBA returns the colour with the given opacity in [0,1].
func (c RGB) RGBA(alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * maxChannel))}
}

// Blend mixes c over bg with the given opacity.
func (c RGB) Blend(bg RGB, alpha float64) RGB {
	alpha = math.Max(0, math.Min(1, alpha))
	r, g, b := bg.colorful().BlendRgb(c.colorful(), alpha).RGB255()
	return RGB{R: r, G: g, B: b}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / maxChannel,
		G: float64(c.G) / maxChannel,
		B: float64(c.B) / maxChannel,
	}
}

func between(wavelength, a, b float64) bool {
	return wavelength >= a && wavelength < b
}

// Weights returns the linear channel weights in [0,1] for a wavelength.
// Wavelengths below 340 nm, and exactly 781 nm, have no weight at all.
func Weights(wavelength float64) (r, g, b float64) {
	switch {
	case between(wavelength, 340, 440):
		return (440 - wavelength) / 60, 0, 1
	case between(wavelength, 440, 490):
		return 0, (wavelength - 440) / 50, 1
	case between(wavelength, 490, 510):
		return 0, 1, (510 - wavelength) / 20
	case between(wavelength, 510, 580):
		return (wavelength - 510) / 70, 1, 0
	case between(wavelength, 580, 645):
		return 1, (645 - wavelength) / 65, 0
	case between(wavelength, 645, VisibleMax):
		return 1, 0, 0
	case wavelength > VisibleMax:
		return 0.5, 0, 0
	}
	return 0, 0, 0
}

// VisibilityFactor models how bright the eye perceives light of the given
// wavelength. It is 1 in [420,701), ramps down toward both edges of the
// visible band and is 0.1 outside [380,781).
func VisibilityFactor(wavelength float64) float64 {
	switch {
	case !between(wavelength, VisibleMin, VisibleMax):
		return dimFactor
	case between(wavelength, VisibleMin, 420):
		return edgeFactor + (1-edgeFactor)*(wavelength-VisibleMin)/40
	case between(wavelength, 420, 701):
		return 1.0
	default:
		return edgeFactor + (1-edgeFactor)*(780-wavelength)/80
	}
}

// WavelengthToRGB approximates the colour of monochromatic light.
func WavelengthToRGB(wavelength float64) RGB {
	r, g, b := Weights(wavelength)
	factor := VisibilityFactor(wavelength)
	return RGB{
		R: channel(r, factor),
		G: channel(g, factor),
		B: channel(b, factor),
	}
}

// channel applies gamma correction. A zero weight stays exactly zero.
func channel(weight, factor float64) uint8 {
	if weight == 0 {
		return 0
	}
	v := math.Round(maxChannel * math.Pow(weight*factor, gamma))
	return uint8(math.Max(0, math.Min(maxChannel, v)))
}
