package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/stepwheel/constants"
	"github.com/lixenwraith/stepwheel/scale"
	"github.com/lixenwraith/stepwheel/wheel"
)

// Config is the demo's YAML configuration surface. The file is optional;
// flags override individual fields. Defaults are centralized here so the
// rest of the program can assume a well-formed config.
type Config struct {
	// Wheel range and starting value
	Wheel WheelConfig `yaml:"wheel"`

	// Physics tuning
	Physics PhysicsConfig `yaml:"physics"`

	// Audio feedback
	Audio AudioConfig `yaml:"audio"`

	// WebSocket gesture source
	Remote RemoteConfig `yaml:"remote"`

	// Terminal geometry
	Display DisplayConfig `yaml:"display"`
}

type WheelConfig struct {
	Lower   float64 `yaml:"lower"`
	Upper   float64 `yaml:"upper"`
	Step    float64 `yaml:"step"`
	Initial float64 `yaml:"initial"`
}

type PhysicsConfig struct {
	TickSpacingPx float64 `yaml:"tick_spacing_px"`
	Friction      float64 `yaml:"friction"`
	FlickVelocity float64 `yaml:"flick_velocity_px_s"`
	MinVelocity   float64 `yaml:"min_velocity_px_s"`
	RubberBand    float64 `yaml:"rubber_band"`
	SettleMS      int     `yaml:"settle_ms"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type RemoteConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

type DisplayConfig struct {
	PxPerCell float64 `yaml:"px_per_cell"`
}

// DefaultConfig returns a fully-populated Config.
func DefaultConfig() Config {
	return Config{
		Wheel: WheelConfig{
			Lower:   0,
			Upper:   100,
			Step:    1,
			Initial: 50,
		},
		Physics: PhysicsConfig{
			TickSpacingPx: constants.DefaultTickSpacing,
			Friction:      constants.DefaultFriction,
			FlickVelocity: constants.DefaultFlickVelocity,
			MinVelocity:   constants.DefaultMinVelocity,
			RubberBand:    constants.DefaultRubberBand,
			SettleMS:      int(constants.DefaultSettleDuration / time.Millisecond),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Remote: RemoteConfig{
			Enabled: false,
			Listen:  ":8137",
		},
		Display: DisplayConfig{
			PxPerCell: 8,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults; a named file that cannot be read or parsed is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// engineConfig maps the file config onto the engine's Config. Validation
// happens in wheel.New.
func (c Config) engineConfig() wheel.Config {
	return wheel.Config{
		Range: scale.Range{
			Lower: c.Wheel.Lower,
			Upper: c.Wheel.Upper,
			Step:  c.Wheel.Step,
		},
		TickSpacing:    c.Physics.TickSpacingPx,
		Friction:       c.Physics.Friction,
		FlickVelocity:  c.Physics.FlickVelocity,
		MinVelocity:    c.Physics.MinVelocity,
		RubberBand:     c.Physics.RubberBand,
		SettleDuration: time.Duration(c.Physics.SettleMS) * time.Millisecond,
	}
}
