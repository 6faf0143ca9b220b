// Package budget derives party difficulty thresholds and plans a spread of encounter budgets around them.
package budget

import (
	"fmt"
	"math"

	"github.com/jonathan/encounter-diversifier/internal/types"
)

// Params controls how budgets are sampled around the party thresholds
type Params struct {
	EncounterCount   int              // number of samples drawn
	Mean             types.Difficulty // band whose threshold is the distribution mean
	StddevFraction   float64          // sigma as a fraction of the extreme-low span
	ClipToThresholds bool             // clamp into [low, extreme] instead of flooring at 0
	Seed             *int64           // nil draws from a clock-seeded generator
}

// Plan computes the party thresholds for levels and returns the planned budgets.
// See PlanFromThresholds for the sampling and quantization rules.
func Plan(levels []int, table *types.ThresholdTable, costs types.CostTable, p Params) ([]int, error) {
	thresholds, err := PartyThresholds(levels, table)
	if err != nil {
		return nil, err
	}
	return PlanFromThresholds(thresholds, costs.UnitCost(), p)
}

// PlanFromThresholds samples p.EncounterCount budgets from a normal
// distribution centred on thresholds[p.Mean] and quantizes them to multiples
// of unit. The result is strictly increasing and may be shorter than the
// requested count: colliding samples are bumped one unit past the previous
// budget, and dropped when the bump leaves the clipped band.
func PlanFromThresholds(thresholds types.ThresholdMap, unit int, p Params) ([]int, error) {
	if _, err := p.Mean.Index(); err != nil {
		return nil, err
	}
	if p.StddevFraction < 0 || math.IsNaN(p.StddevFraction) {
		return nil, fmt.Errorf("%w: stddev fraction must be non-negative, got %v",
			types.ErrInvalidArgument, p.StddevFraction)
	}
	if p.EncounterCount <= 0 {
		return []int{}, nil
	}

	mean := float64(thresholds[p.Mean])
	sigma := math.Max(1.0, p.StddevFraction*float64(thresholds.Span()))

	samples := drawBudgets(newRNG(p.Seed), p.EncounterCount, mean, sigma)

	q := quantizer{
		lo:   thresholds[types.Low],
		hi:   thresholds[types.Extreme],
		unit: unit,
		clip: p.ClipToThresholds,
	}
	return q.distinct(samples), nil
}

// quantizer maps raw samples onto valid budgets
type quantizer struct {
	lo, hi int
	unit   int
	clip   bool
}

// fit clamps (or floors at zero) v and rounds it down to a unit multiple.
// With clipping, a value rounded below lo is raised to the first multiple
// inside the band; ok is false when the band holds no multiple at all.
func (q quantizer) fit(v int) (int, bool) {
	if q.clip {
		v = min(max(v, q.lo), q.hi)
	} else if v < 0 {
		v = 0
	}
	if q.unit <= 0 {
		return v, true
	}

	v = v / q.unit * q.unit
	if q.clip && v < q.lo {
		v = (q.lo + q.unit - 1) / q.unit * q.unit
		if v > q.hi {
			return 0, false
		}
	}
	return v, true
}

// distinct runs the ascending samples through fit, bumping collisions past
// the previously accepted budget. samples must be sorted ascending.
func (q quantizer) distinct(samples []int) []int {
	step := q.unit
	if step <= 0 {
		step = 1
	}

	accepted := make([]int, 0, len(samples))
	for _, raw := range samples {
		b, ok := q.fit(raw)
		if !ok {
			continue
		}
		if len(accepted) > 0 {
			prev := accepted[len(accepted)-1]
			if b <= prev {
				b = prev + step
				if q.clip && b > q.hi {
					continue
				}
				if b, ok = q.fit(b); !ok {
					continue
				}
			}
			if b <= prev {
				continue
			}
		}
		accepted = append(accepted, b)
	}
	return accepted
}
