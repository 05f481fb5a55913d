package photon

import (
	"fmt"
	"strings"
)

// Metal identifies a cathode material.
type Metal int

const (
	Cesium Metal = iota
	Potassium
	Sodium
	Calcium
	Lithium
	Magnesium
	Silver
	Aluminium
	Zinc
	Copper
	Platinum
)

// MetalInfo describes a cathode material.
type MetalInfo struct {
	Metal        Metal
	Name         string
	Symbol       string
	WorkFunction float64 // eV
}

// ThresholdWavelength is the longest wavelength (nm) able to eject an electron.
func (m MetalInfo) ThresholdWavelength() float64 {
	return HC / m.WorkFunction
}

var metals = []MetalInfo{
	{Cesium, "cesium", "Cs", 2.14},
	{Potassium, "potassium", "K", 2.30},
	{Sodium, "sodium", "Na", 2.36},
	{Calcium, "calcium", "Ca", 2.87},
	{Lithium, "lithium", "Li", 2.90},
	{Magnesium, "magnesium", "Mg", 3.66},
	{Silver, "silver", "Ag", 4.26},
	{Aluminium, "aluminium", "Al", 4.28},
	{Zinc, "zinc", "Zn", 4.33},
	{Copper, "copper", "Cu", 4.65},
	{Platinum, "platinum", "Pt", 5.65},
}

// Metals returns every supported metal ordered by work function.
func Metals() []MetalInfo {
	out := make([]MetalInfo, len(metals))
	copy(out, metals)
	return out
}

// Info returns the table entry of m.
func Info(m Metal) MetalInfo {
	if m < 0 || int(m) >= len(metals) {
		return MetalInfo{Metal: m, Name: "unknown"}
	}
	return metals[m]
}

func (m Metal) String() string {
	return Info(m).Name
}

// ParseMetal looks a metal up by name or chemical symbol, ignoring case.
// "aluminum" is accepted as well.
func ParseMetal(s string) (Metal, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "aluminum" {
		return Aluminium, nil
	}
	for _, info := range metals {
		if key == info.Name || key == strings.ToLower(info.Symbol) {
			return info.Metal, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetal, s)
}
