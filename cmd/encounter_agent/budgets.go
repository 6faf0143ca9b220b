// Package main provides the encounter_agent CLI, which plans diverse encounter lineups for a party.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/encounter-diversifier/internal/budget"
	"github.com/jonathan/encounter-diversifier/internal/observability"
	"github.com/jonathan/encounter-diversifier/internal/pipeline"
	"github.com/jonathan/encounter-diversifier/internal/types"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Sample and quantize encounter budgets without selecting lineups",
	Long:  "Draws budgets from a normal distribution centred on a difficulty threshold, then rounds them to the cost table's unit and removes collisions. Fewer budgets than requested may be returned.",
	RunE:  runBudgets,
}

var (
	budgetsParty      []int
	budgetsEncounters int
	budgetsMean       string
	budgetsStddev     float64
	budgetsClip       bool
	budgetsSeed       int64
	budgetsCosts      string
	budgetsThresholds string
)

func init() {
	budgetsCmd.Flags().IntSliceVarP(&budgetsParty, "party", "p", nil, "Party member levels, comma separated (required)")
	budgetsCmd.Flags().IntVarP(&budgetsEncounters, "encounters", "n", pipeline.DefaultEncounterCount, "Number of budgets to sample")
	budgetsCmd.Flags().StringVarP(&budgetsMean, "mean", "m", string(pipeline.DefaultMean), "Difficulty at the centre of the distribution")
	budgetsCmd.Flags().Float64Var(&budgetsStddev, "stddev", pipeline.DefaultStddevFraction, "Standard deviation as a fraction of the extreme-low span")
	budgetsCmd.Flags().BoolVar(&budgetsClip, "clip", false, "Clip budgets into [low, extreme]")
	budgetsCmd.Flags().Int64Var(&budgetsSeed, "seed", 0, "Random seed (default: clock)")
	budgetsCmd.Flags().StringVar(&budgetsCosts, "costs", "", "Path to a cost table JSON file (default: built-in table)")
	budgetsCmd.Flags().StringVar(&budgetsThresholds, "thresholds", "", "Path to a threshold table JSON file (default: built-in table)")

	if err := budgetsCmd.MarkFlagRequired("party"); err != nil {
		panic(fmt.Sprintf("failed to mark party flag as required: %v", err))
	}

	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(cmd *cobra.Command, _ []string) error {
	mean, err := types.ParseDifficulty(budgetsMean)
	if err != nil {
		return err
	}

	costs, table, err := loadTables(budgetsCosts, budgetsThresholds)
	if err != nil {
		return fmt.Errorf("failed to load tables: %w", err)
	}

	thresholds, err := budget.PartyThresholds(budgetsParty, table)
	if err != nil {
		return fmt.Errorf("failed to compute thresholds: %w", err)
	}

	params := budget.Params{
		EncounterCount:   budgetsEncounters,
		Mean:             mean,
		StddevFraction:   budgetsStddev,
		ClipToThresholds: budgetsClip,
	}
	if cmd.Flags().Changed("seed") {
		params.Seed = &budgetsSeed
	}

	budgets, err := budget.PlanFromThresholds(thresholds, costs.UnitCost(), params)
	if err != nil {
		return fmt.Errorf("failed to plan budgets: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintThresholds(budgetsParty, thresholds)
	printer.PrintBudgets(budgets, thresholds)
	return nil
}
