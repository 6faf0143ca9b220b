// Package selection picks a small, diverse set of distinct lineups for a budget.
package selection

import (
	"fmt"
	"strings"

	"github.com/jonathan/encounter-diversifier/internal/types"
)

// Score is a ranking key compared element by element; higher is better.
type Score []float64

// Compare returns -1, 0 or +1 comparing s to other lexicographically.
// A shorter score that is a prefix of the other sorts first.
func (s Score) Compare(other Score) int {
	for i := 0; i < len(s) && i < len(other); i++ {
		switch {
		case s[i] < other[i]:
			return -1
		case s[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(s) < len(other):
		return -1
	case len(s) > len(other):
		return 1
	}
	return 0
}

// ScoreFunc maps a lineup to its ranking key
type ScoreFunc func(types.Lineup) Score

// Scoring strategy names accepted by ParseScore
const (
	ScoreDiversity     = "diversity"
	ScoreStreakPenalty = "streak-penalty"
)

// DiversityScore prefers more distinct identifiers, then a smaller largest
// repeated block, then more total elements.
func DiversityScore(l types.Lineup) Score {
	unique, largest, _ := histogramStats(l)
	return Score{float64(unique), -float64(largest), float64(len(l))}
}

// StreakPenaltyScore ranks like DiversityScore but also penalizes the sum of
// squared per-identifier counts and prefers fewer total elements.
func StreakPenaltyScore(l types.Lineup) Score {
	unique, largest, squares := histogramStats(l)
	return Score{float64(unique), -float64(largest), -float64(squares), -float64(len(l))}
}

// ParseScore resolves a strategy name; the empty name selects DiversityScore.
func ParseScore(name string) (ScoreFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ScoreDiversity:
		return DiversityScore, nil
	case ScoreStreakPenalty:
		return StreakPenaltyScore, nil
	}
	return nil, fmt.Errorf("%w: unknown score %q (choose from %s, %s)",
		types.ErrInvalidArgument, name, ScoreDiversity, ScoreStreakPenalty)
}

func histogramStats(l types.Lineup) (unique, largest, squares int) {
	for _, n := range l.Histogram() {
		unique++
		largest = max(largest, n)
		squares += n * n
	}
	return unique, largest, squares
}
