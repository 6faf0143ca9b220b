// Package types provides type definitions for structured data used throughout the encounter-diversifier system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Lineup is a candidate encounter composition: adversary identifiers in
// order of discovery. Two lineups are equivalent when their signatures match.
type Lineup []string

// Histogram counts the occurrences of each identifier
func (l Lineup) Histogram() map[string]int {
	counts := make(map[string]int, len(l))
	for _, id := range l {
		counts[id]++
	}
	return counts
}

// Signature returns the identifier-count pairs sorted by identifier
func (l Lineup) Signature() Signature {
	counts := l.Histogram()
	sig := make(Signature, 0, len(counts))
	for id, n := range counts {
		sig = append(sig, SignatureEntry{ID: id, Count: n})
	}
	sort.Slice(sig, func(i, j int) bool {
		return sig[i].ID < sig[j].ID
	})
	return sig
}

// SignatureEntry is one (identifier, count) pair of a Signature
type SignatureEntry struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// Signature is the sorted identifier histogram of a lineup
type Signature []SignatureEntry

// Key renders the signature as a comparable string, e.g. "goblin:1|wolf:2"
func (s Signature) Key() string {
	var sb strings.Builder
	for i, e := range s {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(e.ID)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(e.Count))
	}
	return sb.String()
}

// Bucket is one budget of the final plan with its selected lineups
type Bucket struct {
	Budget  int        `json:"budget"`
	Label   Difficulty `json:"label"`
	Lineups []Lineup   `json:"lineups"`
}

// EncounterPlan is the output of one pipeline run
type EncounterPlan struct {
	RunID       uuid.UUID    `json:"run_id"`
	PartyLevels []int        `json:"party_levels"`
	Thresholds  ThresholdMap `json:"thresholds"`
	Buckets     []Bucket     `json:"buckets"`
}
