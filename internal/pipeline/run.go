// Package pipeline composes the budget planner and lineup selector into an encounter plan.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/encounter-diversifier/internal/budget"
	"github.com/jonathan/encounter-diversifier/internal/selection"
	"github.com/jonathan/encounter-diversifier/internal/tables"
	"github.com/jonathan/encounter-diversifier/internal/types"
)

// Diversify plans budgets for the party, selects lineups for each and
// returns the buckets in ascending budget order. Budgets without any
// lineup are dropped, so the plan may hold fewer buckets than
// EncounterCount.
func Diversify(ctx context.Context, opts Options) (*types.EncounterPlan, error) {
	if err := opts.Validate(); err != nil {
		return nil, &Error{Step: "validate", Message: "invalid options", Cause: err}
	}

	costs := opts.CostTable
	if costs == nil {
		costs = tables.SRDCostTable()
	}
	table := opts.Thresholds
	if table == nil {
		table = tables.DefaultThresholds()
	}
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	runID := uuid.New()
	log := logger.With().Str("run_id", runID.String()).Logger()

	thresholds, err := budget.PartyThresholds(opts.PartyLevels, table)
	if err != nil {
		return nil, &Error{Step: StepThresholds, Message: "failed to compute party thresholds", Cause: err}
	}
	log.Debug().Ints("party", opts.PartyLevels).Interface("thresholds", thresholds).Msg("party thresholds")
	emitProgress(&opts, runID.String(), StepThresholds, "party thresholds computed", thresholds)

	plan := &types.EncounterPlan{
		RunID:       runID,
		PartyLevels: append([]int(nil), opts.PartyLevels...),
		Thresholds:  thresholds,
		Buckets:     []types.Bucket{},
	}

	budgets, err := budget.PlanFromThresholds(thresholds, costs.UnitCost(), budget.Params{
		EncounterCount:   opts.EncounterCount,
		Mean:             opts.MeanDifficulty,
		StddevFraction:   opts.StddevFraction,
		ClipToThresholds: opts.ClipToThresholds,
		Seed:             opts.Seed,
	})
	if err != nil {
		return nil, &Error{Step: StepBudgets, Message: "failed to plan budgets", Cause: err}
	}
	log.Debug().Ints("budgets", budgets).Int("requested", opts.EncounterCount).Msg("planned budgets")
	emitProgress(&opts, runID.String(), StepBudgets, fmt.Sprintf("%d budgets planned", len(budgets)), budgets)

	selected, err := selectAll(ctx, &opts, costs, budgets, runID.String(), log)
	if err != nil {
		return nil, err
	}

	for i, b := range budgets {
		if len(selected[i]) == 0 {
			log.Debug().Int("budget", b).Msg("no lineups, budget dropped")
			emitProgress(&opts, runID.String(), StepDropped, fmt.Sprintf("budget %d dropped", b), b)
			continue
		}
		plan.Buckets = append(plan.Buckets, types.Bucket{
			Budget:  b,
			Label:   budget.Label(b, thresholds),
			Lineups: selected[i],
		})
	}

	log.Info().Int("buckets", len(plan.Buckets)).Int("budgets", len(budgets)).Msg("encounter plan ready")
	return plan, nil
}

// selectAll runs the selector for every budget on a bounded errgroup.
// Results are indexed like budgets so ordering does not depend on scheduling.
func selectAll(ctx context.Context, opts *Options, costs types.CostTable, budgets []int, runID string, log zerolog.Logger) ([][]types.Lineup, error) {
	selected := make([][]types.Lineup, len(budgets))

	g, gCtx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, b := range budgets {
		g.Go(func() error {
			lineups, err := selection.SelectContext(gCtx, costs, b, opts.FillRatio, opts.MaxLineups, opts.Score)
			if err != nil {
				return &Error{Step: StepBucket, Message: fmt.Sprintf("failed to select lineups for budget %d", b), Cause: err}
			}
			selected[i] = lineups
			log.Debug().Int("budget", b).Int("lineups", len(lineups)).Msg("lineups selected")
			emitProgress(opts, runID, StepBucket, fmt.Sprintf("budget %d: %d lineups", b, len(lineups)), b)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return selected, nil
}
