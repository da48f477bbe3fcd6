package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/fznnorm/internal/resolve"
)

// Config holds everything an App needs for one run.
type Config struct {
	SolutionPath string
	ModelPath    string

	Format    string
	Objective bool

	LogFormat string
	LogLevel  string

	MaxDepth      int
	DefaultValue  string
	OutputMarkers []string
	ReservedKeys  []string
}

// NewConfig validates cfg and fills in the resolver defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SolutionPath == "" {
		return nil, errors.New("SolutionPath is a required configuration field and cannot be empty")
	}
	if cfg.ModelPath == "" {
		return nil, errors.New("ModelPath is a required configuration field and cannot be empty")
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("MaxDepth must not be negative, got %d", cfg.MaxDepth)
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = resolve.DefaultMaxDepth
	}
	if cfg.Format == "" {
		cfg.Format = "dzn"
	}
	if cfg.DefaultValue == "" {
		cfg.DefaultValue = resolve.DefaultValue
	}
	return &cfg, nil
}
