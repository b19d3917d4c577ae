// Package config loads TOML configuration for applications built on the
// graphics layer: log verbosity and window preferences. The layer
// itself needs none of this to run; Default covers everything.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/opal/graphics/core"
)

// Config is the root of the TOML document.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Context ContextConfig `toml:"context"`
	Window  WindowConfig  `toml:"window"`
}

// LogConfig controls the shared logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string `toml:"level"`
}

// ContextConfig controls the graphics context.
type ContextConfig struct {
	// Debug enables the device error callback.
	Debug bool `toml:"debug"`
}

// WindowConfig carries preferences for the window-system collaborator.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info"},
		Context: ContextConfig{Debug: true},
		Window:  WindowConfig{Title: "opal", Width: 1280, Height: 720},
	}
}

// Load parses a TOML document, filling unset fields from Default.
func Load(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and parses a TOML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Apply pushes the configuration into the process: currently the log
// level of the shared logger.
func (c *Config) Apply() error {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", c.Log.Level, err)
	}
	core.SetLogLevel(level)
	return nil
}
