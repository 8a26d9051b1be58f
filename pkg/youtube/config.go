package youtube

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents an optional player configuration file. Applications
// ship presets (dimensions, base URL, iframe API parameters) as YAML and
// apply them to a controller before the first load.
type Config struct {
	Width      string         `yaml:"width,omitempty"`
	Height     string         `yaml:"height,omitempty"`
	BaseURL    string         `yaml:"baseURL,omitempty"`
	PlayerVars map[string]any `yaml:"playerVars,omitempty"`
}

// LoadConfig reads a player configuration file. A missing file is not an
// error and yields an empty configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML player configuration.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse player config: %w", err)
	}
	return &cfg, nil
}

// Apply copies the configuration's non-empty values onto the controller.
// Call before the first Load; a page already loaded is not reconfigured.
func (cfg *Config) Apply(c *PlayerController) {
	if cfg.Width != "" {
		c.Width = cfg.Width
	}
	if cfg.Height != "" {
		c.Height = cfg.Height
	}
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	if len(cfg.PlayerVars) > 0 {
		if c.Vars == nil {
			c.Vars = make(map[string]any, len(cfg.PlayerVars))
		}
		for k, v := range cfg.PlayerVars {
			c.Vars[k] = v
		}
	}
}
