package photon

const (
	Planck           = 6.62607015e-34  // J·s
	SpeedOfLight     = 2.99792458e8    // m/s
	ElementaryCharge = 1.602176634e-19 // C

	// HC is Planck's constant times the speed of light in eV·nm.
	HC = Planck * SpeedOfLight / ElementaryCharge * 1e9

	// SaturationCurrent is the photocurrent at full intensity and collecting voltage.
	SaturationCurrent = 1e-6 // A
)
