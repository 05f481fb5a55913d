package spectrum

import "math"

const (
	beamOpacity    = 0.65
	invisibleScale = 0.6

	// MaxIntensity is the upper end of the intensity slider.
	MaxIntensity = 100.0
)

// BeamOpacity returns the opacity of the light beam for a slider intensity
// in [0,100]. Light outside [350,781) nm is drawn dimmer.
func BeamOpacity(wavelength, intensity float64) float64 {
	intensity = math.Max(0, math.Min(MaxIntensity, intensity))
	alpha := beamOpacity * intensity / MaxIntensity
	if between(wavelength, 350, VisibleMax) {
		return alpha
	}
	return alpha * invisibleScale
}
