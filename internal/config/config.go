// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/touchcone/internal/engine/mesh"
	"github.com/Faultbox/touchcone/internal/engine/scene"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Cone     ConeConfig     `yaml:"cone"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ConeConfig selects the rendering backend and the cone geometry.
type ConeConfig struct {
	Backend     scene.Backend `yaml:"backend"`
	mesh.Params `yaml:",inline"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock 320x480 portrait window and cone.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      320,
			Height:     480,
			Fullscreen: false,
			VSync:      true,
		},
		Cone: ConeConfig{
			Backend: scene.BackendStrip,
			Params:  mesh.DefaultParams(),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Graphics.Width, c.Graphics.Height)
	}
	if err := scene.CheckParams(c.Cone.Backend, c.Cone.Params); err != nil {
		return fmt.Errorf("%w: cone: %w", ErrInvalidConfig, err)
	}
	return nil
}
