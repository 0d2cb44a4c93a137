// Package config loads player configuration for embedders that drive
// the script runtime from a file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the player-level configuration.
type Config struct {
	Player Player `toml:"player"`
	Limits Limits `toml:"limits"`
}

// Player selects the emulated player and the content version assumed
// for movies that do not declare one.
type Player struct {
	Version           uint8 `toml:"version"`
	DefaultSwfVersion uint8 `toml:"default_swf_version"`
}

// Limits bounds runaway scripts.
type Limits struct {
	MaxStackFrames int `toml:"max_stack_frames"`
}

// Default returns the configuration used when no file is given:
// a version 6 player with matching content.
func Default() *Config {
	return &Config{
		Player: Player{
			Version:           6,
			DefaultSwfVersion: 6,
		},
		Limits: Limits{
			MaxStackFrames: 256,
		},
	}
}

// Load reads a TOML configuration file, filling missing fields from
// Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes, filling missing fields from Default.
// Decoding starts from a zero Config so that absent fields are
// distinguishable from explicit ones; a file that sets only the player
// version gets a matching content version, not the stock one.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if cfg.Player.Version == 0 {
		cfg.Player.Version = Default().Player.Version
	}
	if cfg.Player.DefaultSwfVersion == 0 {
		cfg.Player.DefaultSwfVersion = cfg.Player.Version
	}
	if cfg.Limits.MaxStackFrames <= 0 {
		cfg.Limits.MaxStackFrames = Default().Limits.MaxStackFrames
	}
	return &cfg, nil
}
