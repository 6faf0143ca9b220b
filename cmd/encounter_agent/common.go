// Package main provides the encounter_agent CLI, which plans diverse encounter lineups for a party.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/encounter-diversifier/internal/schemas"
	"github.com/jonathan/encounter-diversifier/internal/tables"
	"github.com/jonathan/encounter-diversifier/internal/types"
	schemadocs "github.com/jonathan/encounter-diversifier/schemas"
)

// newLogger returns a console logger at info level, or debug when debug is set
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

// loadTables returns the built-in tables unless a path overrides them
func loadTables(costsPath, thresholdsPath string) (types.CostTable, *types.ThresholdTable, error) {
	costs := tables.SRDCostTable()
	if costsPath != "" {
		loaded, err := tables.LoadCostTable(costsPath)
		if err != nil {
			return nil, nil, err
		}
		costs = loaded
	}

	thresholds := tables.DefaultThresholds()
	if thresholdsPath != "" {
		loaded, err := tables.LoadThresholdTable(thresholdsPath)
		if err != nil {
			return nil, nil, err
		}
		thresholds = loaded
	}

	return costs, thresholds, nil
}

// writePlan writes plan as indented JSON after checking it against the encounter plan schema
func writePlan(path string, plan *types.EncounterPlan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal encounter plan: %w", err)
	}
	if err := schemas.ValidateDocument(schemadocs.EncounterPlan, data); err != nil {
		return fmt.Errorf("encounter plan failed schema validation: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func requireParty(party []int) error {
	if len(party) == 0 {
		return fmt.Errorf("--party is required (e.g. --party 3,3,4), via flag or config")
	}
	return nil
}
