// Package types provides type definitions for structured data used throughout the encounter-diversifier system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"sort"
)

// MaxLevel is the highest participant level covered by a ThresholdTable
const MaxLevel = 20

// CostTable maps an adversary identifier to its positive cost (experience points)
type CostTable map[string]int

// Validate checks that every identifier is non-empty and every cost is positive
func (c CostTable) Validate() error {
	for _, id := range c.IDs() {
		if id == "" {
			return fmt.Errorf("%w: cost table contains an empty identifier", ErrInvalidArgument)
		}
		if c[id] <= 0 {
			return fmt.Errorf("%w: cost of %q must be positive, got %d", ErrInvalidArgument, id, c[id])
		}
	}
	return nil
}

// UnitCost returns the minimum cost in the table, or 0 for an empty table.
// Planned budgets are quantized to multiples of this value.
func (c CostTable) UnitCost() int {
	unit := 0
	for _, cost := range c {
		if cost > 0 && (unit == 0 || cost < unit) {
			unit = cost
		}
	}
	return unit
}

// IDs returns the identifiers in ascending order
func (c CostTable) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ThresholdTable holds the per-participant cost threshold for each level
// (row 0 is level 1) and each difficulty band (ascending columns).
type ThresholdTable [MaxLevel][DifficultyCount]int

// Row returns the thresholds for a participant level in 1..MaxLevel
func (t *ThresholdTable) Row(level int) ([DifficultyCount]int, error) {
	if level < 1 || level > MaxLevel {
		return [DifficultyCount]int{}, fmt.Errorf("%w: level %d outside 1..%d", ErrInvalidArgument, level, MaxLevel)
	}
	return t[level-1], nil
}

// Validate checks that every entry is positive
func (t *ThresholdTable) Validate() error {
	for i, row := range t {
		for j, v := range row {
			if v <= 0 {
				return fmt.Errorf("%w: threshold for level %d (%s) must be positive, got %d",
					ErrInvalidArgument, i+1, Difficulties[j], v)
			}
		}
	}
	return nil
}

// ThresholdMap is a party-level budget for each difficulty band
type ThresholdMap map[Difficulty]int

// Span returns the distance between the extreme and low thresholds
func (m ThresholdMap) Span() int {
	return m[Extreme] - m[Low]
}
