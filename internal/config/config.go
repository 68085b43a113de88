// Package config loads the optional user configuration file. Flags
// always win over file values; the file just sets defaults for them.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Server  ServerConfig  `yaml:"server"`
	UI      UIConfig      `yaml:"ui"`
}

// DatasetConfig points at the default dataset source. URL wins when
// both are set, matching the flag precedence.
type DatasetConfig struct {
	URL  string `yaml:"url"`
	File string `yaml:"file"`
}

// ServerConfig configures the web dashboard.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// UIConfig tunes the interactive front ends.
type UIConfig struct {
	HoverDelayMS int `yaml:"hover_delay_ms"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Listen: ":8080"},
		UI:     UIConfig{HoverDelayMS: 100},
	}
}

// DefaultPath is the per-user config location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sentimap", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error;
// the defaults apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
