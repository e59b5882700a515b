// Package config handles loading and validation of user configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sgaunet/millisecond/internal/output"
	"github.com/sgaunet/millisecond/internal/units"
	"github.com/sgaunet/millisecond/pkg/duration"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidUnit is returned when the unit field names no known unit.
	ErrInvalidUnit = errors.New("invalid unit")
	// ErrInvalidStyle is returned when the style field is neither short nor long.
	ErrInvalidStyle = errors.New("invalid style")
	// ErrInvalidOutput is returned when the output field is neither text nor yaml.
	ErrInvalidOutput = errors.New("invalid output")
)

const (
	// DefaultUnit is the input unit used when none is configured.
	DefaultUnit = "ms"
	// DefaultStyle is the rendering style used when none is configured.
	DefaultStyle = "short"
	// DefaultOutput is the output format used when none is configured.
	DefaultOutput = "text"
)

// Config holds the defaults applied when a flag is not given on the command line.
type Config struct {
	Unit   string `yaml:"unit"`
	Style  string `yaml:"style"`
	Merge  *bool  `yaml:"merge"`
	Output string `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	merge := true
	return &Config{
		Unit:   DefaultUnit,
		Style:  DefaultStyle,
		Merge:  &merge,
		Output: DefaultOutput,
	}
}

// DefaultPath returns ~/.config/millisecond/config.yml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "millisecond", "config.yml"), nil
}

// Load reads the configuration at path. An empty path means [DefaultPath], and
// a missing file there is not an error: the defaults are returned instead.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// #nosec G304 - Reading a user-chosen config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.fillDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// fillDefaults restores defaults for keys present in the file but left empty.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Unit == "" {
		c.Unit = d.Unit
	}
	if c.Style == "" {
		c.Style = d.Style
	}
	if c.Merge == nil {
		c.Merge = d.Merge
	}
	if c.Output == "" {
		c.Output = d.Output
	}
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	if _, err := units.Parse(c.Unit); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUnit, err)
	}

	if _, err := duration.ParseStyle(c.Style); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStyle, err)
	}

	if _, err := output.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutput, err)
	}

	return nil
}

// MergeEnabled reports the merge setting, true when unset.
func (c *Config) MergeEnabled() bool {
	return c.Merge == nil || *c.Merge
}
