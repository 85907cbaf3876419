// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintJobDescription outputs a human-readable summary of the parsed job
// description.
func (p *Printer) PrintJobDescription(jd *types.JobDescription) {
	if jd == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", jd.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", jd.Company))
	if jd.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", jd.Location))
	}
	sb.WriteString("\n")

	if len(jd.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		count := min(len(jd.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", jd.Requirements[i]))
		}
		if len(jd.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.Requirements)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(jd.NiceToHave) > 0 {
		sb.WriteString("Nice to Have:\n")
		count := min(len(jd.NiceToHave), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", jd.NiceToHave[i]))
		}
		if len(jd.NiceToHave) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.NiceToHave)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(jd.Keywords) > 0 {
		count := min(len(jd.Keywords), maxItemsToShow*2)
		sb.WriteString(fmt.Sprintf("Keywords: %s", strings.Join(jd.Keywords[:count], ", ")))
		if len(jd.Keywords) > count {
			sb.WriteString(fmt.Sprintf(" (+%d more)", len(jd.Keywords)-count))
		}
		sb.WriteString("\n")
	}

	p.printBox("JOB DESCRIPTION", strings.TrimRight(sb.String(), "\n"))
}

// PrintRankingResult outputs the ranked candidate table.
func (p *Printer) PrintRankingResult(result *types.RankingResult) {
	if result == nil || len(result.Candidates) == 0 {
		return
	}

	var sb strings.Builder
	for _, c := range result.Candidates {
		label := c.Name
		if label == "" {
			label = c.ResumePath
		}
		sb.WriteString(fmt.Sprintf("%2d. %-30s  align=%.3f  cover=%.3f\n",
			c.Rank, truncate(label, 30), c.AlignmentScore, c.KeywordCoverage))
	}

	p.printBox("RANKING", strings.TrimRight(sb.String(), "\n"))
}

// PrintCandidateDetail outputs the per-requirement breakdown and evidence for
// one candidate.
func (p *Printer) PrintCandidateDetail(c *types.CandidateScore) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume:    %s\n", c.ResumePath))
	if c.Name != "" {
		sb.WriteString(fmt.Sprintf("Candidate: %s\n", c.Name))
	}
	sb.WriteString(fmt.Sprintf("Alignment: %.3f   Coverage: %.3f\n", c.AlignmentScore, c.KeywordCoverage))

	if c.OverallExplanation != "" {
		sb.WriteString("\n")
		sb.WriteString(c.OverallExplanation)
		sb.WriteString("\n")
	}

	if len(c.PerRequirement) > 0 {
		sb.WriteString("\nPer Requirement:\n")
		count := min(len(c.PerRequirement), maxItemsToShow)
		for i := 0; i < count; i++ {
			r := c.PerRequirement[i]
			sb.WriteString(fmt.Sprintf("  %.2f  %s\n", r.Score, truncate(r.Requirement, boxWidth-14)))
		}
		if len(c.PerRequirement) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(c.PerRequirement)-maxItemsToShow))
		}
	}

	if len(c.Evidence) > 0 {
		sb.WriteString("\nEvidence:\n")
		count := min(len(c.Evidence), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := c.Evidence[i]
			sb.WriteString(fmt.Sprintf("  %.2f  %s\n", e.Score, truncate(e.Text, boxWidth-14)))
		}
	}

	p.printBox("CANDIDATE", strings.TrimRight(sb.String(), "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
