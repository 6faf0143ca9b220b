// Package selection picks a small, diverse set of distinct lineups for a budget.
package selection

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/jonathan/encounter-diversifier/internal/combos"
	"github.com/jonathan/encounter-diversifier/internal/types"
)

// Unbounded as a cap keeps every distinct lineup. It forces a full
// enumeration, which is exponential in the cost table size.
const Unbounded = 0

// overFetch is how many candidates are drawn per kept lineup
const overFetch = 10

// Select returns up to limit distinct lineups for budget, best score first.
// See SelectContext.
func Select(costs types.CostTable, budget int, fillRatio float64, limit int, score ScoreFunc) ([]types.Lineup, error) {
	return SelectContext(context.Background(), costs, budget, fillRatio, limit, score)
}

// SelectContext draws limit*10 candidates from the enumerator (all of them
// when limit is Unbounded), stable-sorts them by score descending and keeps
// the first lineup of each signature until limit are kept. A nil score uses
// DiversityScore. An empty result is not an error; it is also returned when
// the empty lineup is the only candidate.
func SelectContext(ctx context.Context, costs types.CostTable, budget int, fillRatio float64, limit int, score ScoreFunc) ([]types.Lineup, error) {
	if budget < 0 {
		return nil, &Error{Message: fmt.Sprintf("budget must be non-negative, got %d", budget), Cause: types.ErrInvalidArgument}
	}
	if limit < 0 {
		return nil, &Error{Message: fmt.Sprintf("cap must be non-negative, got %d", limit), Cause: types.ErrInvalidArgument}
	}
	if fillRatio < 0 || fillRatio > 1 {
		return nil, &Error{Message: fmt.Sprintf("fill ratio must be within [0, 1], got %v", fillRatio), Cause: types.ErrInvalidArgument}
	}
	if score == nil {
		score = DiversityScore
	}

	candidates, err := combos.TakeContext(ctx, combos.Enumerate(costs, budget, combos.Constraints{FillRatio: fillRatio}), fetchLimit(limit))
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("selection for budget %d interrupted", budget), Cause: err}
	}
	if onlyEmpty(candidates) {
		return []types.Lineup{}, nil
	}

	return rank(candidates, limit, score), nil
}

// fetchLimit is the candidate count drawn for a cap: 0 (all) when the cap is
// Unbounded, otherwise limit*overFetch saturated at math.MaxInt.
func fetchLimit(limit int) int {
	if limit == Unbounded {
		return 0
	}
	if limit > math.MaxInt/overFetch {
		return math.MaxInt
	}
	return limit * overFetch
}

// onlyEmpty reports whether no candidate holds an adversary. A budget that
// only admits the empty lineup yields no encounter.
func onlyEmpty(candidates []types.Lineup) bool {
	for _, l := range candidates {
		if len(l) > 0 {
			return false
		}
	}
	return true
}

type scored struct {
	lineup types.Lineup
	score  Score
}

// rank orders candidates by score descending, keeping discovery order on
// ties, and keeps the first lineup of each signature up to limit.
func rank(candidates []types.Lineup, limit int, score ScoreFunc) []types.Lineup {
	ranked := make([]scored, len(candidates))
	for i, l := range candidates {
		ranked[i] = scored{lineup: l, score: score(l)}
	}
	slices.SortStableFunc(ranked, func(a, b scored) int {
		return b.score.Compare(a.score)
	})

	kept := make([]types.Lineup, 0, min(len(ranked), max(limit, 1)))
	seen := make(map[string]struct{}, len(ranked))
	for _, r := range ranked {
		key := r.lineup.Signature().Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, r.lineup)
		if limit != Unbounded && len(kept) >= limit {
			break
		}
	}
	return kept
}
