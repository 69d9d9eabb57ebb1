package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/mazegen/internal/maze"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRows          = 10
	DefaultCols          = 10
	DefaultSize          = 500
	DefaultSource        = "seeded"
	DefaultFPS           = 60
	DefaultStepsPerFrame = 1
	DefaultTheme         = "classic"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Rows          int    `yaml:"rows"`
	Cols          int    `yaml:"cols"`
	Size          int    `yaml:"size"`
	Seed          int64  `yaml:"seed"`
	Source        string `yaml:"source"`
	FPS           int    `yaml:"fps"`
	StepsPerFrame int    `yaml:"steps_per_frame"`
	Theme         string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		Size:          DefaultSize,
		Source:        DefaultSource,
		FPS:           DefaultFPS,
		StepsPerFrame: DefaultStepsPerFrame,
		Theme:         DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the host needs before building a grid. Bad
// dimensions also match maze.ErrInvalidDimension.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: %w: got %dx%d", ErrInvalidConfig, maze.ErrInvalidDimension, c.Rows, c.Cols)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.StepsPerFrame <= 0 {
		return fmt.Errorf("%w: steps_per_frame must be positive, got %d", ErrInvalidConfig, c.StepsPerFrame)
	}
	return nil
}

// Clone returns an independent copy so presets are never mutated.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
