// Package config holds the run configuration for the converter,
// loaded from an optional YAML file and finished by flag overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SemonoffArt/proneta2obsidian/pkg/station"
)

// Defaults, matching the paths the converter has always probed.
const (
	DefaultOutputDir = "./net"
	DefaultLogLevel  = "info"

	// DefaultInputPath is the full plant export; FallbackInputPath is
	// the trimmed sample export used on workstations without one.
	DefaultInputPath  = "./sources/proneta.xml"
	FallbackInputPath = "./resources/proneta.xml"
)

// ErrNoInput is returned when no input export is configured and none
// of the probed paths exist.
var ErrNoInput = errors.New("no input export found")

// Config drives one conversion run.
type Config struct {
	// Input is the export path. Empty means probe the default paths.
	Input      string         `yaml:"input"`
	OutputDir  string         `yaml:"output_dir" validate:"required"`
	ReportPath string         `yaml:"report_path"`
	LogLevel   string         `yaml:"log_level" validate:"required,oneof=debug info warn error"`
	Naming     station.Config `yaml:"naming"`
}

// Load reads a config from a YAML file and applies defaults.
// Validation is a separate step so flag overrides can apply first.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// ResolveInput picks the export to convert: the explicit setting if
// present, otherwise the first probed path that exists.
func (c *Config) ResolveInput() (string, error) {
	if c.Input != "" {
		return c.Input, nil
	}
	for _, path := range []string{DefaultInputPath, FallbackInputPath} {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s and %s", ErrNoInput, DefaultInputPath, FallbackInputPath)
}
