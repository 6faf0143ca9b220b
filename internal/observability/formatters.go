// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/encounter-diversifier/internal/budget"
	"github.com/jonathan/encounter-diversifier/internal/combos"
	"github.com/jonathan/encounter-diversifier/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of lineups listed per box
	maxItemsToShow = 25
)

// Printer handles formatted output of thresholds, budgets and lineups
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
// Width is counted in runes so multi-byte identifiers are never split.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// PrintThresholds outputs the party levels and the summed threshold per band.
func (p *Printer) PrintThresholds(levels []int, thresholds types.ThresholdMap) {
	if thresholds == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Party levels: %s\n\n", formatLevels(levels)))
	for _, d := range types.Difficulties {
		sb.WriteString(fmt.Sprintf("  %-9s %6d\n", d, thresholds[d]))
	}

	p.printBox("PARTY THRESHOLDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBudgets outputs planned budgets with the label each would receive.
func (p *Printer) PrintBudgets(budgets []int, thresholds types.ThresholdMap) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Planned budgets: %d\n\n", len(budgets)))
	for i, b := range budgets {
		sb.WriteString(fmt.Sprintf("#%-3d %6d  %s\n", i+1, b, budget.Label(b, thresholds)))
	}

	p.printBox("PLANNED BUDGETS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPlan outputs one box per bucket, each lineup followed by its total cost.
// It fails with types.ErrKeyNotFound when a lineup names an identifier
// missing from costs; nothing is printed in that case.
func (p *Printer) PrintPlan(plan *types.EncounterPlan, costs types.CostTable) error {
	if plan == nil {
		return nil
	}

	boxes := make([][2]string, 0, len(plan.Buckets))
	for _, bucket := range plan.Buckets {
		content, err := formatLineups(bucket.Lineups, costs)
		if err != nil {
			return fmt.Errorf("bucket %d: %w", bucket.Budget, err)
		}
		title := fmt.Sprintf("BUDGET %d (%s)", bucket.Budget, strings.ToUpper(string(bucket.Label)))
		boxes = append(boxes, [2]string{title, content})
	}

	if len(boxes) == 0 {
		p.printBox("ENCOUNTER PLAN", "No budget produced a lineup.")
		return nil
	}
	for _, box := range boxes {
		p.printBox(box[0], box[1])
	}
	return nil
}

// PrintLineups outputs a single box of lineups under title
func (p *Printer) PrintLineups(title string, lineups []types.Lineup, costs types.CostTable) error {
	content, err := formatLineups(lineups, costs)
	if err != nil {
		return err
	}
	p.printBox(title, content)
	return nil
}

func formatLineups(lineups []types.Lineup, costs types.CostTable) (string, error) {
	if len(lineups) == 0 {
		return "No lineups.", nil
	}

	var sb strings.Builder
	count := min(len(lineups), maxItemsToShow)
	for i := 0; i < count; i++ {
		total, err := combos.TotalCost(lineups[i], costs)
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("%2d. [%5d] %s\n", i+1, total, formatLineup(lineups[i])))
	}
	if len(lineups) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(lineups)-maxItemsToShow))
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// formatLineup renders the signature, e.g. "goblin x2, wolf"
func formatLineup(l types.Lineup) string {
	if len(l) == 0 {
		return "(empty)"
	}
	sig := l.Signature()
	parts := make([]string, len(sig))
	for i, e := range sig {
		parts[i] = e.ID
		if e.Count > 1 {
			parts[i] = fmt.Sprintf("%s x%d", e.ID, e.Count)
		}
	}
	return strings.Join(parts, ", ")
}

func formatLevels(levels []int) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = fmt.Sprint(l)
	}
	return strings.Join(parts, ", ")
}
