package presentation

import (
	"fmt"
	"io"

	"webp2png/internal/domain"
)

const arrow = "→"

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

func (p Printer) PrintDryRun(plan domain.ConversionPlan) {
	fmt.Fprintf(p.Writer, "Source: %s\n", plan.Paths.Source)
	fmt.Fprintf(p.Writer, "Target: %s\n", plan.Paths.TargetDir)
	fmt.Fprintln(p.Writer)

	fmt.Fprintln(p.Writer, "Converting:")
	for _, line := range formatConvertLines(plan.Candidates) {
		fmt.Fprintln(p.Writer, line)
	}

	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "%d files would be converted.\n", len(plan.Candidates))
}

func (p Printer) PrintSummary(counters domain.RunCounters) {
	rows := []SummaryRow{
		{Label: "Successful", Value: fmt.Sprintf("%d", counters.Successful)},
		{Label: "Failed", Value: fmt.Sprintf("%d", counters.Failed)},
		{Label: "Skipped", Value: fmt.Sprintf("%d", counters.Skipped)},
	}
	fmt.Fprintln(p.Writer, RenderSummary(rows))
}

func formatConvertLines(candidates []domain.Candidate) []string {
	lines := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		lines = append(lines, fmt.Sprintf("Convert %s  %s %s", candidate.Name, arrow, candidate.TargetPath))
	}

	if len(lines) <= 4 {
		return lines
	}
	head := lines[:2]
	tail := lines[len(lines)-2:]
	return append(append(head, "..."), tail...)
}
