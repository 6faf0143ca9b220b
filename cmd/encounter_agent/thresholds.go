// Package main provides the encounter_agent CLI, which plans diverse encounter lineups for a party.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/encounter-diversifier/internal/budget"
	"github.com/jonathan/encounter-diversifier/internal/observability"
)

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Print the party's difficulty thresholds",
	Long:  "Sums the per-level threshold of every party member for each difficulty band (low, moderate, high, extreme).",
	RunE:  runThresholds,
}

var (
	thresholdsParty []int
	thresholdsTable string
)

func init() {
	thresholdsCmd.Flags().IntSliceVarP(&thresholdsParty, "party", "p", nil, "Party member levels, comma separated (required)")
	thresholdsCmd.Flags().StringVar(&thresholdsTable, "thresholds", "", "Path to a threshold table JSON file (default: built-in table)")

	if err := thresholdsCmd.MarkFlagRequired("party"); err != nil {
		panic(fmt.Sprintf("failed to mark party flag as required: %v", err))
	}

	rootCmd.AddCommand(thresholdsCmd)
}

func runThresholds(_ *cobra.Command, _ []string) error {
	_, table, err := loadTables("", thresholdsTable)
	if err != nil {
		return fmt.Errorf("failed to load tables: %w", err)
	}

	thresholds, err := budget.PartyThresholds(thresholdsParty, table)
	if err != nil {
		return fmt.Errorf("failed to compute thresholds: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintThresholds(thresholdsParty, thresholds)
	return nil
}
