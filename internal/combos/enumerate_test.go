package combos

import (
	"testing"

	"github.com/jonathan/encounter-diversifier/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce lists every duplicate-free subset of costs meeting the filters,
// keyed by signature.
func bruteForce(costs types.CostTable, budget int, limits Constraints) map[string]bool {
	ids := costs.IDs()
	out := make(map[string]bool)
	for mask := 0; mask < 1<<len(ids); mask++ {
		var l types.Lineup
		total := 0
		for i, id := range ids {
			if mask&(1<<i) != 0 {
				l = append(l, id)
				total += costs[id]
			}
		}
		if total > budget {
			continue
		}
		if limits.MaxCount > 0 && len(l) > limits.MaxCount {
			continue
		}
		if len(l) < limits.MinCount {
			continue
		}
		if limits.FillRatio > 0 && (len(l) == 0 || float64(total) < float64(budget)*limits.FillRatio) {
			continue
		}
		out[l.Signature().Key()] = true
	}
	return out
}

func signatures(t *testing.T, lineups []types.Lineup) map[string]bool {
	t.Helper()
	out := make(map[string]bool, len(lineups))
	for _, l := range lineups {
		key := l.Signature().Key()
		require.False(t, out[key], "lineup %v emitted twice", l)
		out[key] = true
	}
	return out
}

func TestEnumerate_ExampleScenario(t *testing.T) {
	costs := types.CostTable{"A": 10, "B": 25, "C": 50}

	got := Take(Enumerate(costs, 50, Constraints{}), 0)

	assert.Equal(t, []types.Lineup{
		{},
		{"C"},
		{"B"},
		{"B", "A"},
		{"A"},
	}, got)
}

func TestEnumerate_NoDuplicateIdentifiers(t *testing.T) {
	costs := types.CostTable{"goblin": 50, "kobold": 25, "wolf": 50, "bandit": 25, "rat": 10}

	for l := range Enumerate(costs, 120, Constraints{}) {
		seen := make(map[string]bool)
		for _, id := range l {
			assert.False(t, seen[id], "identifier %s repeated in %v", id, l)
			seen[id] = true
		}
	}
}

func TestEnumerate_BudgetAndFillInvariant(t *testing.T) {
	costs := types.CostTable{"goblin": 50, "kobold": 25, "wolf": 50, "bandit": 25, "rat": 10}
	budget := 100

	lineups := Take(Enumerate(costs, budget, Constraints{FillRatio: 0.85}), 0)
	require.NotEmpty(t, lineups)
	for _, l := range lineups {
		total, err := TotalCost(l, costs)
		require.NoError(t, err)
		assert.LessOrEqual(t, total, budget)
		assert.GreaterOrEqual(t, float64(total), 0.85*float64(budget))
	}
}

func TestEnumerate_CardinalityInvariant(t *testing.T) {
	costs := types.CostTable{"a": 10, "b": 10, "c": 10, "d": 10, "e": 10}

	lineups := Take(Enumerate(costs, 50, Constraints{MinCount: 2, MaxCount: 3}), 0)
	require.NotEmpty(t, lineups)
	for _, l := range lineups {
		assert.GreaterOrEqual(t, len(l), 2)
		assert.LessOrEqual(t, len(l), 3)
	}
	// C(5,2) + C(5,3)
	assert.Len(t, lineups, 20)
}

func TestEnumerate_MatchesBruteForce(t *testing.T) {
	tables := []types.CostTable{
		{"A": 10, "B": 25, "C": 50},
		{"A": 10, "B": 30, "C": 50},
		{"a": 10, "b": 10, "c": 25, "d": 50, "e": 100},
		{"x": 7, "y": 13, "z": 13, "w": 40, "v": 41},
	}
	budgets := []int{0, 10, 35, 60, 75, 100, 250}
	limits := []Constraints{
		{},
		{FillRatio: 0.75},
		{MinCount: 2},
		{MaxCount: 2},
		{MinCount: 1, MaxCount: 3, FillRatio: 0.5},
		{FillRatio: 1},
	}

	for _, costs := range tables {
		for _, budget := range budgets {
			for _, lim := range limits {
				got := signatures(t, Take(Enumerate(costs, budget, lim), 0))
				want := bruteForce(costs, budget, lim)
				assert.Equal(t, want, got, "costs=%v budget=%d limits=%+v", costs, budget, lim)
			}
		}
	}
}

func TestEnumerate_PrunedPrefixKeepsCheaperEntries(t *testing.T) {
	// C+B overshoots but C+A fits exactly: the cheaper tail must still be tried.
	costs := types.CostTable{"A": 10, "B": 30, "C": 50}

	got := signatures(t, Take(Enumerate(costs, 60, Constraints{}), 0))
	assert.True(t, got[types.Lineup{"C", "A"}.Signature().Key()])
	assert.False(t, got[types.Lineup{"C", "B"}.Signature().Key()])
}

func TestEnumerate_EmptyTable(t *testing.T) {
	assert.Equal(t, []types.Lineup{{}}, Take(Enumerate(types.CostTable{}, 100, Constraints{}), 0))
	assert.Empty(t, Take(Enumerate(types.CostTable{}, 100, Constraints{FillRatio: 0.5}), 0))
	assert.Empty(t, Take(Enumerate(nil, 100, Constraints{MinCount: 1}), 0))
}

func TestEnumerate_ZeroBudget(t *testing.T) {
	costs := types.CostTable{"A": 10}

	assert.Equal(t, []types.Lineup{{}}, Take(Enumerate(costs, 0, Constraints{}), 0))
	assert.Empty(t, Take(Enumerate(costs, 0, Constraints{FillRatio: 0.9}), 0))
	assert.Empty(t, Take(Enumerate(costs, 0, Constraints{MinCount: 1}), 0))
}

func TestEnumerate_NonZeroFillExcludesEmptyLineup(t *testing.T) {
	costs := types.CostTable{"A": 10, "B": 25}

	for l := range Enumerate(costs, 30, Constraints{FillRatio: 0.1}) {
		assert.NotEmpty(t, l)
	}
}

func TestEnumerate_NegativeBudget(t *testing.T) {
	costs := types.CostTable{"A": 10}
	assert.Equal(t, []types.Lineup{{}}, Take(Enumerate(costs, -5, Constraints{}), 0))
}

func TestEnumerate_DeterministicTieBreak(t *testing.T) {
	costs := types.CostTable{"alpha": 25, "beta": 25, "gamma": 25}

	got := Take(Enumerate(costs, 25, Constraints{MinCount: 1}), 0)
	assert.Equal(t, []types.Lineup{{"gamma"}, {"beta"}, {"alpha"}}, got)
}

func TestEnumerate_LazyEarlyStop(t *testing.T) {
	costs := types.CostTable{}
	for i := 0; i < 40; i++ {
		costs[string(rune('a'+i%26))+string(rune('a'+i/26))] = 10 + i
	}

	yielded := 0
	for range Enumerate(costs, 100000, Constraints{}) {
		yielded++
		if yielded == 5 {
			break
		}
	}
	assert.Equal(t, 5, yielded)
}

func TestEnumerate_Restartable(t *testing.T) {
	costs := types.CostTable{"A": 10, "B": 25, "C": 50, "D": 50}
	seq := Enumerate(costs, 90, Constraints{FillRatio: 0.5})

	first := Take(seq, 0)
	second := Take(seq, 0)
	assert.Equal(t, first, second)
}

func TestTake_Limit(t *testing.T) {
	costs := types.CostTable{"A": 10, "B": 25, "C": 50}

	assert.Len(t, Take(Enumerate(costs, 100, Constraints{}), 3), 3)
	all := Take(Enumerate(costs, 100, Constraints{}), 0)
	assert.Len(t, all, 8)
}

func TestTotalCost(t *testing.T) {
	costs := types.CostTable{"A": 10, "B": 25}

	total, err := TotalCost(types.Lineup{"A", "B"}, costs)
	require.NoError(t, err)
	assert.Equal(t, 35, total)

	total, err = TotalCost(nil, costs)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = TotalCost(types.Lineup{"A", "Z"}, costs)
	assert.ErrorIs(t, err, types.ErrKeyNotFound)
	assert.Contains(t, err.Error(), `"Z"`)
}

func TestEnumerate_EmissionOrderIsDepthFirst(t *testing.T) {
	costs := types.CostTable{"A": 10, "B": 20, "C": 30}

	got := Take(Enumerate(costs, 60, Constraints{MinCount: 1}), 0)
	keys := make([]string, 0, len(got))
	for _, l := range got {
		keys = append(keys, l.Signature().Key())
	}
	assert.Equal(t, []string{
		"C:1",
		"B:1|C:1",
		"A:1|B:1|C:1",
		"A:1|C:1",
		"B:1",
		"A:1|B:1",
		"A:1",
	}, keys)
}
