// Package config loads the ambient pipeline configuration file (distinct
// from the spec's own JSON layer-settings format): tile size, world size
// override, layer-settings path, and log level, the way the teacher's CLI
// lets YAML override compiled-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the ambient, YAML-sourced pipeline configuration.
type Config struct {
	TileSize          float64 `yaml:"tile_size"`
	WorldSize         float64 `yaml:"world_size"`
	LayerSettingsPath string  `yaml:"layer_settings_path"`
	MountMinDistance  float64 `yaml:"mount_min_distance"`
	Concurrency       int     `yaml:"concurrency"`
	LogLevel          string  `yaml:"log_level"`
}

// Default returns the built-in defaults used when no config file is
// present.
func Default() Config {
	return Config{
		TileSize:    2048,
		Concurrency: 4,
		LogLevel:    "info",
	}
}

// Load reads a YAML config file at path, overlaying it on Default(). A
// missing file is not an error — the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
