package presentation

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"webp2png/internal/domain"
)

func TestFormatConvertLinesTruncates(t *testing.T) {
	candidates := make([]domain.Candidate, 0, 6)
	for i := 0; i < 6; i++ {
		candidates = append(candidates, domain.NewCandidate(fmt.Sprintf("/photos/img%d.webp", i), "/out"))
	}

	lines := formatConvertLines(candidates)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[2] != "..." {
		t.Fatalf("expected ellipsis, got %q", lines[2])
	}
}

func TestPrintDryRunIncludesPathsAndCandidates(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	plan := domain.ConversionPlan{
		Paths: domain.ResolvedPaths{Source: "/photos", TargetDir: "/out"},
		Candidates: []domain.Candidate{
			domain.NewCandidate("/photos/sample.webp", "/out"),
		},
	}

	printer.PrintDryRun(plan)
	output := buf.String()
	if !strings.Contains(output, "Converting:") {
		t.Fatalf("expected Converting section")
	}
	if !strings.Contains(output, "sample.webp") {
		t.Fatalf("expected candidate name, got %q", output)
	}
	if !strings.Contains(output, "/out") {
		t.Fatalf("expected target dir, got %q", output)
	}
	if !strings.Contains(output, "1 files would be converted.") {
		t.Fatalf("expected candidate count, got %q", output)
	}
}

func TestPrintSummaryShowsCounters(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintSummary(domain.RunCounters{Successful: 3, Failed: 1, Skipped: 2})
	output := buf.String()
	for _, want := range []string{"Successful", "Failed", "Skipped", "3", "1", "2"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in summary, got %q", want, output)
		}
	}
}
