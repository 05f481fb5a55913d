package config

import "sort"

var Presets = map[string]*Config{
	"sodium-green": {
		Metal: "sodium", Wavelength: 520, Intensity: 80, Voltage: 2,
	},
	"cesium-red": {
		Metal: "cesium", Wavelength: 650, Intensity: 100, Voltage: 1,
	},
	"zinc-uv": {
		Metal: "zinc", Wavelength: 250, Intensity: 70, Voltage: 3,
	},
	"platinum-visible": {
		Metal: "platinum", Wavelength: 450, Intensity: 100, Voltage: 5,
	},
	"retarding": {
		Metal: "potassium", Wavelength: 400, Intensity: 90, Voltage: -0.5,
	},
}

// GetPreset returns a full config built from the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Metal = p.Metal
	cfg.Wavelength = p.Wavelength
	cfg.Intensity = p.Intensity
	cfg.Voltage = p.Voltage
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
