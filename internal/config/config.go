// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/encounter-diversifier/internal/pipeline"
	"github.com/jonathan/encounter-diversifier/internal/selection"
	"github.com/jonathan/encounter-diversifier/internal/tables"
	"github.com/jonathan/encounter-diversifier/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
// Pointer fields distinguish an explicit zero from an unset value.
type Config struct {
	// Party
	Party []int `json:"party,omitempty" validate:"omitempty,dive,min=1,max=20"` // Participant levels

	// Planner
	Encounters *int     `json:"encounters,omitempty"`                                  // Budgets to sample
	Mean       string   `json:"mean,omitempty"`                                        // Difficulty label for the distribution mean
	Stddev     *float64 `json:"stddev,omitempty" validate:"omitempty,gte=0"`           // Sigma as a fraction of the extreme-low span
	Clip       bool     `json:"clip,omitempty"`                                        // Clip budgets into [low, extreme]
	Seed       *int64   `json:"seed,omitempty"`                                        // Random seed
	FillRatio  *float64 `json:"fill_ratio,omitempty" validate:"omitempty,gte=0,lte=1"` // Minimum share of the budget a lineup uses

	// Selector
	MaxLineups *int   `json:"max_lineups,omitempty" validate:"omitempty,gte=0"` // Lineups per bucket, 0 for unbounded
	Score      string `json:"score,omitempty"`                                  // diversity or streak-penalty

	// Data
	CostTable      string `json:"cost_table,omitempty"`      // Path to a cost table JSON file
	ThresholdTable string `json:"threshold_table,omitempty"` // Path to a threshold table JSON file

	// Behavior
	Workers *int `json:"workers,omitempty" validate:"omitempty,gte=0"` // Concurrent selections, 0 for one per budget
	Verbose bool `json:"verbose,omitempty"`                            // Print debug log events
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' (got %v): %w",
				fe.Field(), fe.ActualTag(), fe.Value(), types.ErrInvalidArgument)
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Mean != "" {
		if _, err := types.ParseDifficulty(c.Mean); err != nil {
			return fmt.Errorf("config error: 'mean': %w", err)
		}
	}
	if _, err := selection.ParseScore(c.Score); err != nil {
		return fmt.Errorf("config error: 'score': %w", err)
	}

	// Validate file paths exist (if specified)
	if c.CostTable != "" {
		if _, err := os.Stat(c.CostTable); os.IsNotExist(err) {
			return fmt.Errorf("config error: cost table file not found: %s", c.CostTable)
		}
	}
	if c.ThresholdTable != "" {
		if _, err := os.Stat(c.ThresholdTable); os.IsNotExist(err) {
			return fmt.Errorf("config error: threshold table file not found: %s", c.ThresholdTable)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.Party) == 0 {
		result.Party = defaults.Party
	}
	if result.Mean == "" {
		result.Mean = defaults.Mean
	}
	if result.Score == "" {
		result.Score = defaults.Score
	}
	if result.CostTable == "" {
		result.CostTable = defaults.CostTable
	}
	if result.ThresholdTable == "" {
		result.ThresholdTable = defaults.ThresholdTable
	}

	// Pointer fields: use default if unset
	if result.Encounters == nil {
		result.Encounters = defaults.Encounters
	}
	if result.Stddev == nil {
		result.Stddev = defaults.Stddev
	}
	if result.FillRatio == nil {
		result.FillRatio = defaults.FillRatio
	}
	if result.MaxLineups == nil {
		result.MaxLineups = defaults.MaxLineups
	}
	if result.Seed == nil {
		result.Seed = defaults.Seed
	}
	if result.Workers == nil {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Options builds pipeline options from the config, starting from
// pipeline.DefaultOptions and loading any table files it names.
func (c *Config) Options() (pipeline.Options, error) {
	opts := pipeline.DefaultOptions(c.Party...)

	if c.Encounters != nil {
		opts.EncounterCount = *c.Encounters
	}
	if c.Mean != "" {
		mean, err := types.ParseDifficulty(c.Mean)
		if err != nil {
			return opts, err
		}
		opts.MeanDifficulty = mean
	}
	if c.Stddev != nil {
		opts.StddevFraction = *c.Stddev
	}
	if c.FillRatio != nil {
		opts.FillRatio = *c.FillRatio
	}
	if c.MaxLineups != nil {
		opts.MaxLineups = *c.MaxLineups
	}
	if c.Workers != nil {
		opts.Workers = *c.Workers
	}
	opts.ClipToThresholds = c.Clip
	opts.Seed = c.Seed

	score, err := selection.ParseScore(c.Score)
	if err != nil {
		return opts, err
	}
	opts.Score = score

	if c.CostTable != "" {
		costs, err := tables.LoadCostTable(c.CostTable)
		if err != nil {
			return opts, err
		}
		opts.CostTable = costs
	}
	if c.ThresholdTable != "" {
		thresholds, err := tables.LoadThresholdTable(c.ThresholdTable)
		if err != nil {
			return opts, err
		}
		opts.Thresholds = thresholds
	}

	return opts, nil
}
