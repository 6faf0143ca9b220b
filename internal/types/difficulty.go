// Package types provides type definitions for structured data used throughout the encounter-diversifier system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Difficulty is one of the four ascending encounter difficulty bands
type Difficulty string

const (
	Low      Difficulty = "low"
	Moderate Difficulty = "moderate"
	High     Difficulty = "high"
	Extreme  Difficulty = "extreme"
)

// DifficultyCount is the number of difficulty bands in a threshold row
const DifficultyCount = 4

// Difficulties lists the bands in ascending order. The position of a band
// in this slice is its column in a ThresholdTable row.
var Difficulties = []Difficulty{Low, Moderate, High, Extreme}

// difficultyAliases maps the classic tabletop vocabulary onto the bands
var difficultyAliases = map[string]Difficulty{
	"low":      Low,
	"easy":     Low,
	"moderate": Moderate,
	"medium":   Moderate,
	"high":     High,
	"hard":     High,
	"extreme":  Extreme,
	"deadly":   Extreme,
}

// ParseDifficulty resolves a label (case-insensitive, aliases allowed) to a Difficulty.
// Unknown labels fail with ErrInvalidArgument naming the allowed set.
func ParseDifficulty(label string) (Difficulty, error) {
	if d, ok := difficultyAliases[strings.ToLower(strings.TrimSpace(label))]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: difficulty %q, choose from %s",
		ErrInvalidArgument, label, strings.Join(difficultyNames(), ", "))
}

// Index returns the column of d in a threshold row, or an ErrInvalidArgument error.
func (d Difficulty) Index() (int, error) {
	for i, known := range Difficulties {
		if d == known {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: difficulty %q, choose from %s",
		ErrInvalidArgument, string(d), strings.Join(difficultyNames(), ", "))
}

// Valid reports whether d is one of the four bands
func (d Difficulty) Valid() bool {
	_, err := d.Index()
	return err == nil
}

func (d Difficulty) String() string {
	return string(d)
}

func difficultyNames() []string {
	names := make([]string, 0, len(Difficulties))
	for _, d := range Difficulties {
		names = append(names, string(d))
	}
	return names
}
