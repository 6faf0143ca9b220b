// Package combos enumerates duplicate-free adversary lineups whose total cost fits a budget.
package combos

import (
	"context"
	"fmt"
	"iter"

	"github.com/jonathan/encounter-diversifier/internal/types"
)

// checkEvery is how many lineups TakeContext consumes between context checks
const checkEvery = 256

// Take collects up to limit lineups from seq. A limit <= 0 collects the whole
// sequence, which is exponential in the cost table size in the worst case.
func Take(seq iter.Seq[types.Lineup], limit int) []types.Lineup {
	out, _ := TakeContext(context.Background(), seq, limit)
	return out
}

// TakeContext is Take with periodic cancellation checks. It returns the
// context error, and no lineups, once ctx is done.
func TakeContext(ctx context.Context, seq iter.Seq[types.Lineup], limit int) ([]types.Lineup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]types.Lineup, 0)
	for l := range seq {
		out = append(out, l)
		if limit > 0 && len(out) >= limit {
			break
		}
		if len(out)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// TotalCost sums the cost of every identifier in lineup.
// An identifier missing from costs fails with types.ErrKeyNotFound.
func TotalCost(lineup types.Lineup, costs types.CostTable) (int, error) {
	total := 0
	for _, id := range lineup {
		cost, ok := costs[id]
		if !ok {
			return 0, fmt.Errorf("%w: %q is not in the cost table", types.ErrKeyNotFound, id)
		}
		total += cost
	}
	return total, nil
}
