// Package config holds the simulator's tunable knobs: compile-time
// defaults, optionally overridden from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config carries every runtime constant of the simulator. Values are
// fixed once the frame loop starts.
type Config struct {
	MinOffset  float64 // day-offset clamp lower bound (days from the epoch)
	MaxOffset  float64 // day-offset clamp upper bound
	BaseStep   float64 // hold velocity before any ramping, days per frame
	RampFrames int     // consecutive held frames per velocity doubling
	MaxStep    float64 // hold velocity cap, days per frame
	Demo       bool    // autonomous playback, manual time controls disabled
	DemoStep   float64 // demo advance, days per frame
	Night      bool    // start in night mode (red-only rendering)
	Scale      int     // window pixel scale over the 240x240 panel
	TPS        int     // simulation ticks per second
	StatusAddr string  // listen address for the status API, empty disables it
}

// Default returns the built-in configuration. It mirrors the values the
// original panel firmware shipped with.
func Default() Config {
	return Config{
		MinOffset:  -365,
		MaxOffset:  365,
		BaseStep:   1,
		RampFrames: 30,
		MaxStep:    16,
		Demo:       false,
		DemoStep:   4,
		Night:      true,
		Scale:      3,
		TPS:        60,
		StatusAddr: "",
	}
}

// fileConfig is the TOML shape of a config file. Only keys actually
// present in the file override the defaults.
type fileConfig struct {
	MinOffset  float64 `toml:"min_offset_days"`
	MaxOffset  float64 `toml:"max_offset_days"`
	BaseStep   float64 `toml:"base_step_days"`
	RampFrames int     `toml:"ramp_frames"`
	MaxStep    float64 `toml:"max_step_days"`
	Demo       bool    `toml:"demo"`
	DemoStep   float64 `toml:"demo_step_days"`
	Night      bool    `toml:"night_mode"`
	Scale      int     `toml:"window_scale"`
	TPS        int     `toml:"ticks_per_second"`
	StatusAddr string  `toml:"status_addr"`
}

// Load reads a TOML file and applies it on top of Default. The result
// is validated; a bad file or bad values fail the whole load.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if und := meta.Undecoded(); len(und) > 0 {
		// A typoed key would otherwise fall back to its default without
		// a trace; refuse the file instead.
		return Config{}, fmt.Errorf("load config: unknown key %q", und[0].String())
	}

	if meta.IsDefined("min_offset_days") {
		cfg.MinOffset = raw.MinOffset
	}
	if meta.IsDefined("max_offset_days") {
		cfg.MaxOffset = raw.MaxOffset
	}
	if meta.IsDefined("base_step_days") {
		cfg.BaseStep = raw.BaseStep
	}
	if meta.IsDefined("ramp_frames") {
		cfg.RampFrames = raw.RampFrames
	}
	if meta.IsDefined("max_step_days") {
		cfg.MaxStep = raw.MaxStep
	}
	if meta.IsDefined("demo") {
		cfg.Demo = raw.Demo
	}
	if meta.IsDefined("demo_step_days") {
		cfg.DemoStep = raw.DemoStep
	}
	if meta.IsDefined("night_mode") {
		cfg.Night = raw.Night
	}
	if meta.IsDefined("window_scale") {
		cfg.Scale = raw.Scale
	}
	if meta.IsDefined("ticks_per_second") {
		cfg.TPS = raw.TPS
	}
	if meta.IsDefined("status_addr") {
		cfg.StatusAddr = raw.StatusAddr
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the frame loop cannot run with.
func (c Config) Validate() error {
	if c.MinOffset >= c.MaxOffset {
		return fmt.Errorf("offset bounds inverted: min %v >= max %v", c.MinOffset, c.MaxOffset)
	}
	if c.BaseStep <= 0 {
		return fmt.Errorf("base step must be positive, got %v", c.BaseStep)
	}
	if c.MaxStep < c.BaseStep {
		return fmt.Errorf("max step %v below base step %v", c.MaxStep, c.BaseStep)
	}
	if c.RampFrames < 1 {
		return fmt.Errorf("ramp frames must be at least 1, got %d", c.RampFrames)
	}
	if c.DemoStep <= 0 {
		return fmt.Errorf("demo step must be positive, got %v", c.DemoStep)
	}
	if c.Scale < 1 {
		return fmt.Errorf("window scale must be at least 1, got %d", c.Scale)
	}
	if c.TPS < 1 {
		return fmt.Errorf("ticks per second must be at least 1, got %d", c.TPS)
	}
	return nil
}
