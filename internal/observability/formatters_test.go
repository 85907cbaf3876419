package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-ranker/internal/types"
)

func TestPrintJobDescription(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobDescription(&types.JobDescription{
		Title:        "Backend Engineer",
		Company:      "Acme",
		Requirements: []string{"Go", "PostgreSQL"},
		Keywords:     []string{"go", "postgresql", "kubernetes"},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB DESCRIPTION")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "PostgreSQL")
}

func TestPrintJobDescriptionNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobDescription(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRankingResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankingResult(&types.RankingResult{
		Candidates: []types.CandidateScore{
			{Rank: 1, Name: "Alice", ResumePath: "alice.pdf", AlignmentScore: 0.9, KeywordCoverage: 0.8},
			{Rank: 2, ResumePath: "bob.txt", AlignmentScore: 0.4, KeywordCoverage: 0.3},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "RANKING")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "bob.txt", "path shown when no name was extracted")
	assert.Contains(t, out, "0.900")
}

func TestPrintCandidateDetail(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCandidateDetail(&types.CandidateScore{
		ResumePath:         "alice.pdf",
		Name:               "Alice",
		AlignmentScore:     0.9,
		KeywordCoverage:    0.8,
		OverallExplanation: "Strong match",
		PerRequirement: []types.RequirementScore{
			{Requirement: "Go", Score: 0.95},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "CANDIDATE")
	assert.Contains(t, out, "Strong match")
	assert.Contains(t, out, "Go")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
}
