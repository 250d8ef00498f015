// Package config loads and validates the movegraph CLI configuration.
//
// The config is a small YAML file pointing at the Movement exports and
// the results directory:
//
//	travel_times: data/sao_paulo-travel-times.csv
//	zones: data/sao_paulo-zones.json
//	results_dir: results
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for config loading.
var (
	// ErrInvalidConfig indicates the file parsed but failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config holds dataset paths and output placement for the CLI. Dataset
// paths are optional at load time; each command checks for the one it
// needs.
type Config struct {
	// TravelTimes is the "travel times by hour of day" CSV export.
	TravelTimes string `yaml:"travel_times" validate:"omitempty,file"`

	// Zones is the zone-boundary GeoJSON export.
	Zones string `yaml:"zones" validate:"omitempty,file"`

	// ResultsDir is where output files land. Created on demand.
	ResultsDir string `yaml:"results_dir" validate:"required"`
}

// Load reads, parses and validates the YAML config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.ResultsDir == "" {
		cfg.ResultsDir = "results"
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &cfg, nil
}
