package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/photosim/internal/photon"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMetal      = "sodium"
	DefaultWavelength = 500
	DefaultIntensity  = 50
	DefaultVoltage    = 0.0
	DefaultTheme      = "lab"
	DefaultFrameRate  = 30
	DefaultWidth      = 500
	DefaultHeight     = 470
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Metal      string       `yaml:"metal"`
	Wavelength int          `yaml:"wavelength"`
	Intensity  int          `yaml:"intensity"`
	Voltage    float64      `yaml:"voltage"`
	Theme      string       `yaml:"theme"`
	FrameRate  int          `yaml:"frame_rate"`
	Export     ExportConfig `yaml:"export"`
}

type ExportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Metal:      DefaultMetal,
		Wavelength: DefaultWavelength,
		Intensity:  DefaultIntensity,
		Voltage:    DefaultVoltage,
		Theme:      DefaultTheme,
		FrameRate:  DefaultFrameRate,
		Export: ExportConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field against the ranges of the user controls.
func (c *Config) Validate() error {
	if _, err := photon.ParseMetal(c.Metal); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Wavelength < 100 || c.Wavelength > 1000 {
		return fmt.Errorf("%w: wavelength %d nm outside [100,1000]", ErrInvalidConfig, c.Wavelength)
	}
	if c.Intensity < 0 || c.Intensity > 100 {
		return fmt.Errorf("%w: intensity %d outside [0,100]", ErrInvalidConfig, c.Intensity)
	}
	if c.Voltage < -10 || c.Voltage > 10 {
		return fmt.Errorf("%w: voltage %.2f outside [-10,10]", ErrInvalidConfig, c.Voltage)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate %d", ErrInvalidConfig, c.FrameRate)
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("%w: export size %dx%d", ErrInvalidConfig, c.Export.Width, c.Export.Height)
	}
	return nil
}

// Inputs converts the config into physics model inputs.
func (c *Config) Inputs() (photon.Inputs, error) {
	m, err := photon.ParseMetal(c.Metal)
	if err != nil {
		return photon.Inputs{}, err
	}
	return photon.Inputs{
		Metal:      m,
		Wavelength: float64(c.Wavelength),
		Intensity:  float64(c.Intensity),
		Voltage:    c.Voltage,
	}, nil
}
