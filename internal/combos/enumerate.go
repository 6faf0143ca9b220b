// Package combos enumerates duplicate-free adversary lineups whose total cost fits a budget.
package combos

import (
	"iter"
	"sort"

	"github.com/jonathan/encounter-diversifier/internal/types"
)

// Constraints narrows which lineups Enumerate emits. Zero values disable a filter.
type Constraints struct {
	MaxCount  int     // largest lineup size explored (0 = unbounded)
	MinCount  int     // smallest lineup size emitted
	FillRatio float64 // share of the budget a lineup must use to be emitted
}

// entry is one eligible cost table row
type entry struct {
	id   string
	cost int
}

// search holds the immutable state of one traversal
type search struct {
	entries []entry
	suffix  []int // suffix[i] is the total cost of entries[i:]
	budget  int
	floor   float64
	limits  Constraints
}

// Enumerate returns the lazy sequence of lineups drawn from costs with total
// cost within budget. Each identifier appears at most once per lineup and no
// two emitted lineups share a signature.
//
// Entries costlier than the budget are dropped; the rest are visited in
// (cost descending, identifier descending) order, depth first, and every node
// of the search (the empty lineup included) is emitted when it passes the
// MinCount and FillRatio filters. Branches that cannot fit another entry,
// cannot reach the fill floor, or cannot reach MinCount are cut without
// being visited. Every range over the sequence starts a fresh traversal.
//
// Costs are expected to be positive.
func Enumerate(costs types.CostTable, budget int, limits Constraints) iter.Seq[types.Lineup] {
	return func(yield func(types.Lineup) bool) {
		s := newSearch(costs, budget, limits)
		s.run(yield)
	}
}

func newSearch(costs types.CostTable, budget int, limits Constraints) *search {
	entries := make([]entry, 0, len(costs))
	for id, cost := range costs {
		if cost <= budget {
			entries = append(entries, entry{id: id, cost: cost})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].cost != entries[j].cost {
			return entries[i].cost > entries[j].cost
		}
		return entries[i].id > entries[j].id
	})

	suffix := make([]int, len(entries)+1)
	for i := len(entries) - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + entries[i].cost
	}

	return &search{
		entries: entries,
		suffix:  suffix,
		budget:  budget,
		floor:   float64(budget) * limits.FillRatio,
		limits:  limits,
	}
}

// run walks the subset lattice with an explicit stack. next[d] is the first
// entry index still to try below the node at depth d, so len(next) is always
// len(picked)+1.
func (s *search) run(yield func(types.Lineup) bool) {
	picked := make([]int, 0, len(s.entries))
	total := 0

	if s.accepts(0, 0) && !yield(types.Lineup{}) {
		return
	}

	next := []int{0}
	for len(next) > 0 {
		d := len(next) - 1
		j := s.candidate(next[d], len(picked), total)
		if j < 0 {
			next = next[:d]
			if len(picked) > 0 {
				total -= s.entries[picked[len(picked)-1]].cost
				picked = picked[:len(picked)-1]
			}
			continue
		}

		next[d] = j + 1
		picked = append(picked, j)
		total += s.entries[j].cost
		if s.accepts(len(picked), total) && !yield(s.lineup(picked)) {
			return
		}
		next = append(next, j+1)
	}
}

// candidate returns the first index >= from worth extending the current node
// with, or -1 when the node has no productive child left.
func (s *search) candidate(from, size, total int) int {
	n := len(s.entries)
	if from >= n {
		return -1
	}
	if s.limits.MaxCount > 0 && size >= s.limits.MaxCount {
		return -1
	}

	// Costs are non-increasing, so everything after the first fit also fits.
	room := s.budget - total
	j := from + sort.Search(n-from, func(k int) bool {
		return s.entries[from+k].cost <= room
	})
	if j >= n {
		return -1
	}

	// Both bounds shrink as j grows: failing here fails for every later j.
	if float64(total+s.suffix[j]) < s.floor {
		return -1
	}
	if size+(n-j) < s.limits.MinCount {
		return -1
	}
	return j
}

// accepts applies the emission filters. Any positive fill ratio rejects the
// empty lineup, including at a zero budget.
func (s *search) accepts(size, total int) bool {
	if size < s.limits.MinCount {
		return false
	}
	if s.limits.FillRatio > 0 && size == 0 {
		return false
	}
	return float64(total) >= s.floor
}

func (s *search) lineup(picked []int) types.Lineup {
	l := make(types.Lineup, len(picked))
	for i, idx := range picked {
		l[i] = s.entries[idx].id
	}
	return l
}
