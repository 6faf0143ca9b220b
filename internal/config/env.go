// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv
const (
	EnvConfigPath = "ENCOUNTER_CONFIG"
	EnvSeed       = "ENCOUNTER_SEED"
	EnvWorkers    = "ENCOUNTER_WORKERS"
)

// PathFromEnv returns flagPath when set, otherwise the ENCOUNTER_CONFIG path.
func PathFromEnv(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvConfigPath)
}

// FromEnv creates a Config from environment variables.
// It reads ENCOUNTER_SEED and ENCOUNTER_WORKERS; unset variables leave fields unset.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	if seedStr := os.Getenv(EnvSeed); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvSeed, err)
		}
		cfg.Seed = &seed
	}

	if workersStr := os.Getenv(EnvWorkers); workersStr != "" {
		workers, err := strconv.Atoi(workersStr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvWorkers, err)
		}
		if workers < 0 {
			return nil, fmt.Errorf("invalid %s: must be non-negative, got %d", EnvWorkers, workers)
		}
		cfg.Workers = &workers
	}

	return cfg, nil
}
