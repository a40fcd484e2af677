package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the editor cannot run with.
func (c *Config) Validate() error {
	if c.Grid.Unit <= 0 {
		return fmt.Errorf("grid unit must be positive, got %v", c.Grid.Unit)
	}
	if c.Grid.Count < 0 {
		return fmt.Errorf("grid count must not be negative, got %d", c.Grid.Count)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Near <= 0 || c.Window.Far <= c.Window.Near {
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Window.Near, c.Window.Far)
	}
	if c.Window.Samples < 0 || c.Window.Samples > 16 {
		return fmt.Errorf("window samples must be in [0, 16], got %d", c.Window.Samples)
	}
	if len(c.Files.Slots) > MaxSlots {
		return fmt.Errorf("at most %d slot files, got %d", MaxSlots, len(c.Files.Slots))
	}
	return nil
}

// MaxSlots is the number of model slots the editor provides.
const MaxSlots = 9

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		DefaultPath(),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Facetcraft")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Facetcraft")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "facetcraft")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "facetcraft")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
