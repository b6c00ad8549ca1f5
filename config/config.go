// Package config holds the integration-layer runtime options. Kits and
// patterns are compiled-in engine data and deliberately not configurable
// here; this file covers the policies and effect settings the engine
// core leaves open.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// HiHat policies; see engine.HiHatMode.
const (
	HiHatSteps = "steps"
	HiHatBeat  = "beat"
)

// EngineConfig selects the engine-level policies.
type EngineConfig struct {
	// HiHat is "steps" (pattern-driven, preset mode only) or "beat"
	// (second metronome voice). Empty means "steps".
	HiHat string `json:"hiHat,omitempty"`
	// MuteClickInPreset silences the metronome while a preset plays.
	MuteClickInPreset bool `json:"muteClickInPreset,omitempty"`
	// Pattern indexes the built-in pattern table.
	Pattern int `json:"pattern,omitempty"`
}

// DelayConfig drives the modulated delay send. All values are clamped
// again by the effect's own setters.
type DelayConfig struct {
	Enabled     bool    `json:"enabled"`
	TimeSeconds float32 `json:"timeSeconds,omitempty"`
	Feedback    float32 `json:"feedback,omitempty"`
	Mix         float32 `json:"mix,omitempty"`
	LFORateHz   float32 `json:"lfoRateHz,omitempty"`
	LFODepth    float32 `json:"lfoDepth,omitempty"`
}

// Config is the main configuration structure.
type Config struct {
	Engine      EngineConfig `json:"engine"`
	Delay       DelayConfig  `json:"delay"`
	Passthrough bool         `json:"passthrough,omitempty"`
	// SoftClip and Watch default to true, so they must always be
	// serialized; omitempty would drop the false value and Load would
	// resurrect the default.
	SoftClip   bool    `json:"softClip"`
	TempoKnob  float32 `json:"tempoKnob"`
	VolumeKnob float32 `json:"volumeKnob"`
	// Watch reloads this file on change and applies it live.
	Watch bool `json:"watch"`
}

// DefaultConfig matches the original hardware behavior: hi-hat on
// pattern steps, click audible during presets, no effects.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{HiHat: HiHatSteps},
		Delay: DelayConfig{
			TimeSeconds: 0.1,
			Feedback:    0.3,
			Mix:         0.5,
			LFORateHz:   0.5,
			LFODepth:    0.2,
		},
		SoftClip:   true,
		TempoKnob:  0.5,
		VolumeKnob: 0.8,
		Watch:      true,
	}
}

// Dir returns the config directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-beatbox"), nil
}

// Path returns the full path to config.json.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config at path, or returns defaults if the file does
// not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("can't read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Save writes the config, creating its directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
