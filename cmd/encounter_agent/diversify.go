// Package main provides the encounter_agent CLI, which plans diverse encounter lineups for a party.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/encounter-diversifier/internal/config"
	"github.com/jonathan/encounter-diversifier/internal/observability"
	"github.com/jonathan/encounter-diversifier/internal/pipeline"
	"github.com/jonathan/encounter-diversifier/internal/tables"
)

var diversifyCmd = &cobra.Command{
	Use:   "diversify",
	Short: "Plan encounter budgets for a party and fill each with diverse lineups",
	Long: `Runs the full pipeline: party thresholds -> budget sampling -> quantization -> lineup enumeration -> diversity ranking -> buckets.

Configuration can be loaded from a JSON file using --config (or the ENCOUNTER_CONFIG environment variable). Command-line arguments override config file values.`,
	RunE: runDiversify,
}

var (
	diversifyConfigPath string
	diversifyParty      []int
	diversifyEncounters int
	diversifyMean       string
	diversifyStddev     float64
	diversifyFill       float64
	diversifyMaxLineups int
	diversifyClip       bool
	diversifySeed       int64
	diversifyScore      string
	diversifyCosts      string
	diversifyThresholds string
	diversifyWorkers    int
	diversifyOut        string
)

func init() {
	// Config file flag (processed first)
	diversifyCmd.Flags().StringVar(&diversifyConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	diversifyCmd.Flags().IntSliceVarP(&diversifyParty, "party", "p", nil, "Party member levels, comma separated")
	diversifyCmd.Flags().IntVarP(&diversifyEncounters, "encounters", "n", pipeline.DefaultEncounterCount, "Number of budgets to sample")
	diversifyCmd.Flags().StringVarP(&diversifyMean, "mean", "m", string(pipeline.DefaultMean), "Difficulty at the centre of the distribution (low, moderate, high, extreme)")
	diversifyCmd.Flags().Float64Var(&diversifyStddev, "stddev", pipeline.DefaultStddevFraction, "Standard deviation as a fraction of the extreme-low span")
	diversifyCmd.Flags().Float64Var(&diversifyFill, "fill", pipeline.DefaultFillRatio, "Minimum share of the budget a lineup must use")
	diversifyCmd.Flags().IntVarP(&diversifyMaxLineups, "max-lineups", "k", pipeline.DefaultMaxLineups, "Lineups per bucket (0 for unbounded)")
	diversifyCmd.Flags().BoolVar(&diversifyClip, "clip", false, "Clip budgets into [low, extreme]")
	diversifyCmd.Flags().Int64Var(&diversifySeed, "seed", 0, "Random seed (default: clock, or ENCOUNTER_SEED)")
	diversifyCmd.Flags().StringVar(&diversifyScore, "score", "diversity", "Ranking strategy: diversity or streak-penalty")
	diversifyCmd.Flags().StringVar(&diversifyCosts, "costs", "", "Path to a cost table JSON file (default: built-in table)")
	diversifyCmd.Flags().StringVar(&diversifyThresholds, "thresholds", "", "Path to a threshold table JSON file (default: built-in table)")
	diversifyCmd.Flags().IntVar(&diversifyWorkers, "workers", pipeline.DefaultWorkers, "Budgets processed concurrently (0 for one per budget, or ENCOUNTER_WORKERS)")
	diversifyCmd.Flags().StringVarP(&diversifyOut, "out", "o", "", "Write the encounter plan as JSON to this path")

	rootCmd.AddCommand(diversifyCmd)
}

func runDiversify(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, verbose)

	// Step 1: Load config file if provided
	var cfg config.Config
	if path := config.PathFromEnv(diversifyConfigPath); path != "" {
		loadedCfg, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		logger.Debug().Str("path", path).Msg("loaded config")
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("party") {
		cfg.Party = diversifyParty
	}
	if flags.Changed("encounters") {
		cfg.Encounters = &diversifyEncounters
	}
	if flags.Changed("mean") {
		cfg.Mean = diversifyMean
	}
	if flags.Changed("stddev") {
		cfg.Stddev = &diversifyStddev
	}
	if flags.Changed("fill") {
		cfg.FillRatio = &diversifyFill
	}
	if flags.Changed("max-lineups") {
		cfg.MaxLineups = &diversifyMaxLineups
	}
	if flags.Changed("clip") {
		cfg.Clip = diversifyClip
	}
	if flags.Changed("seed") {
		cfg.Seed = &diversifySeed
	}
	if flags.Changed("score") {
		cfg.Score = diversifyScore
	}
	if flags.Changed("costs") {
		cfg.CostTable = diversifyCosts
	}
	if flags.Changed("thresholds") {
		cfg.ThresholdTable = diversifyThresholds
	}
	if flags.Changed("workers") {
		cfg.Workers = &diversifyWorkers
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	// Step 3: Apply environment defaults for unset values
	envCfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	cfg = cfg.MergeWithDefaults(*envCfg)

	// Step 4: Validate required fields
	if err := requireParty(cfg.Party); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Verbose {
		logger = newLogger(os.Stderr, true)
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Logger = &logger

	plan, err := pipeline.Diversify(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("failed to diversify encounters: %w", err)
	}

	costs := opts.CostTable
	if costs == nil {
		costs = tables.SRDCostTable()
	}
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintThresholds(plan.PartyLevels, plan.Thresholds)
	if err := printer.PrintPlan(plan, costs); err != nil {
		return err
	}

	if diversifyOut != "" {
		if err := writePlan(diversifyOut, plan); err != nil {
			return err
		}
		logger.Info().Str("path", diversifyOut).Str("run_id", plan.RunID.String()).Msg("encounter plan written")
	}

	return nil
}
