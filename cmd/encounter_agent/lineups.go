// Package main provides the encounter_agent CLI, which plans diverse encounter lineups for a party.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/encounter-diversifier/internal/budget"
	"github.com/jonathan/encounter-diversifier/internal/combos"
	"github.com/jonathan/encounter-diversifier/internal/observability"
	"github.com/jonathan/encounter-diversifier/internal/types"
)

var lineupsCmd = &cobra.Command{
	Use:   "lineups",
	Short: "List lineups for one difficulty of a party",
	Long:  "Enumerates duplicate-free lineups whose cost fits the party threshold for one difficulty, largest adversaries first. Use --budget to enumerate against an explicit budget instead.",
	RunE:  runLineups,
}

var (
	lineupsParty      []int
	lineupsDifficulty string
	lineupsBudget     int
	lineupsFill       float64
	lineupsMinCount   int
	lineupsMaxCount   int
	lineupsLimit      int
	lineupsCosts      string
	lineupsThresholds string
)

func init() {
	lineupsCmd.Flags().IntSliceVarP(&lineupsParty, "party", "p", nil, "Party member levels, comma separated")
	lineupsCmd.Flags().StringVarP(&lineupsDifficulty, "difficulty", "d", string(types.Moderate), "Difficulty whose threshold is the budget")
	lineupsCmd.Flags().IntVarP(&lineupsBudget, "budget", "b", 0, "Explicit budget (overrides --party and --difficulty)")
	lineupsCmd.Flags().Float64Var(&lineupsFill, "fill", 1.0, "Minimum share of the budget a lineup must use")
	lineupsCmd.Flags().IntVar(&lineupsMinCount, "min-count", 0, "Minimum adversaries per lineup")
	lineupsCmd.Flags().IntVar(&lineupsMaxCount, "max-count", 0, "Maximum adversaries per lineup (0 for no limit)")
	lineupsCmd.Flags().IntVar(&lineupsLimit, "limit", 20, "Maximum lineups to enumerate (0 for all, which can be very slow)")
	lineupsCmd.Flags().StringVar(&lineupsCosts, "costs", "", "Path to a cost table JSON file (default: built-in table)")
	lineupsCmd.Flags().StringVar(&lineupsThresholds, "thresholds", "", "Path to a threshold table JSON file (default: built-in table)")

	rootCmd.AddCommand(lineupsCmd)
}

func runLineups(cmd *cobra.Command, _ []string) error {
	if lineupsFill < 0 || lineupsFill > 1 {
		return fmt.Errorf("--fill must be within [0, 1], got %v", lineupsFill)
	}
	if lineupsMinCount < 0 || lineupsMaxCount < 0 {
		return fmt.Errorf("--min-count and --max-count must be non-negative")
	}

	costs, table, err := loadTables(lineupsCosts, lineupsThresholds)
	if err != nil {
		return fmt.Errorf("failed to load tables: %w", err)
	}

	target := lineupsBudget
	title := fmt.Sprintf("LINEUPS FOR BUDGET %d", target)
	if !cmd.Flags().Changed("budget") {
		if err := requireParty(lineupsParty); err != nil {
			return err
		}
		difficulty, err := types.ParseDifficulty(lineupsDifficulty)
		if err != nil {
			return err
		}
		thresholds, err := budget.PartyThresholds(lineupsParty, table)
		if err != nil {
			return fmt.Errorf("failed to compute thresholds: %w", err)
		}
		target = thresholds[difficulty]
		title = fmt.Sprintf("%s LINEUPS (BUDGET %d)", strings.ToUpper(string(difficulty)), target)
	}
	if target < 0 {
		return fmt.Errorf("--budget must be non-negative, got %d", target)
	}

	limits := combos.Constraints{
		MaxCount:  lineupsMaxCount,
		MinCount:  lineupsMinCount,
		FillRatio: lineupsFill,
	}
	lineups := combos.Take(combos.Enumerate(costs, target, limits), lineupsLimit)

	return observability.NewPrinter(os.Stdout).PrintLineups(title, lineups, costs)
}
