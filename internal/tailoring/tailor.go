// Package tailoring implements the single-resume tailoring flow: extract and
// parse the resume and job description, rewrite the resume for the target
// role, then score the rewrite against the same job description.
package tailoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/export"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/prompts"
	"github.com/jonathan/resume-ranker/internal/scoring"
	"github.com/jonathan/resume-ranker/internal/types"
)

// ErrNoClient is returned when tailoring runs without a generative backend.
// Unlike ranking, tailoring has no degraded mode: rewriting requires a model.
var ErrNoClient = errors.New("tailoring requires a generative backend")

// Tailor rewrites the parsed resume as Markdown targeted at the job
// description, honoring the requested tone, length, and target role.
func Tailor(ctx context.Context, client llm.Client, resume *types.Resume, jd *types.JobDescription, opts types.TailoringOptions) (string, error) {
	if client == nil {
		return "", ErrNoClient
	}

	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return "", fmt.Errorf("marshal resume: %w", err)
	}
	jdJSON, err := json.Marshal(jd)
	if err != nil {
		return "", fmt.Errorf("marshal job description: %w", err)
	}

	template := prompts.MustGet("tailoring.json", "tailor-resume")
	prompt := prompts.Format(template, map[string]string{
		"Tone":       opts.Tone,
		"Seniority":  opts.TargetSeniority,
		"Role":       opts.TargetRole,
		"Length":     opts.Length,
		"ResumeJSON": string(resumeJSON),
		"JDJSON":     string(jdJSON),
	})

	out, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("tailoring generation failed: %w", err)
	}
	markdown := strings.TrimSpace(stripMarkdownFence(out))
	if markdown == "" {
		return "", fmt.Errorf("tailoring generation returned empty output")
	}
	return markdown, nil
}

// Run drives the full flow for one resume file and job description text and
// returns the artifacts bundle ready for export.
func Run(ctx context.Context, client llm.Client, logger *zap.Logger, resumePath, jdText string, opts types.TailoringOptions) (*export.TailoringArtifacts, error) {
	if client == nil {
		return nil, ErrNoClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts == (types.TailoringOptions{}) {
		opts = types.DefaultTailoringOptions()
	}

	resumeText, err := ingestion.ExtractText(resumePath)
	if err != nil {
		return nil, err
	}

	resume, resumeRaw, err := parsing.ParseResume(ctx, client, resumeText)
	if err != nil {
		return nil, err
	}
	jd, jdRaw, err := parsing.ParseJobDescription(ctx, client, jdText)
	if err != nil {
		return nil, err
	}
	logger.Debug("tailoring inputs parsed",
		zap.String("resume", resumePath),
		zap.String("candidate", resume.Name),
		zap.String("title", jd.Title))

	markdown, err := Tailor(ctx, client, resume, jd, opts)
	if err != nil {
		return nil, err
	}

	// Score the rewrite with the deterministic engine so the tailoring loop
	// gives the same signal on every run.
	engine, err := scoring.New(scoring.Heuristic, scoring.Deps{})
	if err != nil {
		return nil, err
	}
	result, err := engine.Score(ctx, markdown, jd)
	if err != nil {
		return nil, err
	}

	return &export.TailoringArtifacts{
		Resume:           resume,
		ResumeRaw:        resumeRaw,
		JobDescription:   jd,
		JobRaw:           jdRaw,
		TailoredMarkdown: markdown,
		Alignment:        result.Alignment,
		KeywordCoverage:  result.Coverage,
	}, nil
}

// stripMarkdownFence removes a single wrapping ```markdown fence when the
// model returns one around the whole document.
func stripMarkdownFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return s
	}
	return strings.Join(lines[1:len(lines)-1], "\n")
}
