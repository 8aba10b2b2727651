package config

import (
	"fmt"
	"os"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/sorter"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSize      = 50
	DefaultMin       = 0
	DefaultMax       = 100
	DefaultFPS       = 60
	DefaultAlgorithm = "bubble"
	DefaultDirection = "ascending"
	DefaultTheme     = "classic"
	DefaultLogLevel  = "info"
)

type Config struct {
	Size      int    `yaml:"size"`
	Min       int    `yaml:"min"`
	Max       int    `yaml:"max"`
	FPS       int    `yaml:"fps"`
	Algorithm string `yaml:"algorithm"`
	Direction string `yaml:"direction"`
	Seed      int64  `yaml:"seed"`
	Theme     string `yaml:"theme"`
	LogFile   string `yaml:"log_file"`
	LogLevel  string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:      DefaultSize,
		Min:       DefaultMin,
		Max:       DefaultMax,
		FPS:       DefaultFPS,
		Algorithm: DefaultAlgorithm,
		Direction: DefaultDirection,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadOver(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOver reads a YAML file over base, leaving keys absent from the file
// untouched.
func LoadOver(path string, base *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, base)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that the configuration can build an array and a sorter.
func (c *Config) Validate() error {
	if c.Size <= 0 || c.Min > c.Max {
		return fmt.Errorf("config: %w", &array.InvalidRangeError{N: c.Size, Min: c.Min, Max: c.Max})
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if !sorter.NewRegistry().Has(c.Algorithm) {
		return fmt.Errorf("config: unknown algorithm: %s", c.Algorithm)
	}
	if _, err := sorter.ParseDirection(c.Direction); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SortDirection returns the parsed direction, defaulting to ascending.
func (c *Config) SortDirection() sorter.Direction {
	d, _ := sorter.ParseDirection(c.Direction)
	return d
}
