// Package budget derives party difficulty thresholds and plans a spread of encounter budgets around them.
package budget

import (
	"fmt"

	"github.com/jonathan/encounter-diversifier/internal/types"
)

// PartyThresholds sums, for every difficulty band, the per-participant
// threshold of each party member's level.
func PartyThresholds(levels []int, table *types.ThresholdTable) (types.ThresholdMap, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: threshold table is nil", types.ErrInvalidArgument)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: party has no members", types.ErrInvalidArgument)
	}

	var sums [types.DifficultyCount]int
	for _, level := range levels {
		row, err := table.Row(level)
		if err != nil {
			return nil, err
		}
		for i, v := range row {
			sums[i] += v
		}
	}

	thresholds := make(types.ThresholdMap, types.DifficultyCount)
	for i, d := range types.Difficulties {
		thresholds[d] = sums[i]
	}
	return thresholds, nil
}

// Label returns the first of low, moderate and high whose threshold is at
// least budget, or extreme when the budget exceeds all three.
func Label(budget int, thresholds types.ThresholdMap) types.Difficulty {
	for _, d := range types.Difficulties[:types.DifficultyCount-1] {
		if thresholds[d] >= budget {
			return d
		}
	}
	return types.Extreme
}
