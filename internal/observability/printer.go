// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/kartika/talent-match-intel/internal/report"
	"github.com/kartika/talent-match-intel/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRankedEmployees outputs the employee-level ranked talent list.
func (p *Printer) PrintRankedEmployees(ranked []report.RankedEmployee) {
	var sb strings.Builder

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := ranked[i]
		name := r.FullName
		if name == "" {
			name = r.EmployeeID
		}
		sb.WriteString(fmt.Sprintf("%2d. %-28s %6.2f%%\n", i+1, name, r.FinalMatchRate))
	}
	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(ranked)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("Ranked Talent List (%d employees)", len(ranked)), sb.String())
}

// PrintBaselines outputs the per-trait baselines derived from the benchmark cohort.
func (p *Printer) PrintBaselines(baselines map[string]types.Baseline, traitOrder []string) {
	var sb strings.Builder

	for _, name := range traitOrder {
		baseline, ok := baselines[name]
		if !ok {
			continue
		}
		switch {
		case baseline.Numeric != nil:
			sb.WriteString(fmt.Sprintf("%-24s %10.3f\n", name, *baseline.Numeric))
		case baseline.Category != nil:
			sb.WriteString(fmt.Sprintf("%-24s %10s\n", name, *baseline.Category))
		default:
			sb.WriteString(fmt.Sprintf("%-24s %10s\n", name, "(absent)"))
		}
	}

	p.printBox("Benchmark Baselines", sb.String())
}

// PrintInsights outputs the run summary.
func (p *Printer) PrintInsights(insights *report.Insights) {
	if insights == nil {
		return
	}

	var sb strings.Builder
	top := insights.TopFullName
	if top == "" {
		top = insights.TopEmployeeID
	}
	sb.WriteString(fmt.Sprintf("Top candidate:     %s (%.2f%%)\n", top, insights.TopMatchRate))
	sb.WriteString(fmt.Sprintf("Median match rate: %.2f%%\n", insights.MedianMatchRate))

	p.printBox("Quick Insights", sb.String())
}
