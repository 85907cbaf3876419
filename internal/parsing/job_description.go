// Package parsing converts raw job-description and resume text into the
// structured records used as scoring input, via LLM extraction with lenient
// fallback decoding.
package parsing

import (
	"context"

	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/prompts"
	"github.com/jonathan/resume-ranker/internal/types"
)

// ParseJobDescription extracts a structured JobDescription from raw posting
// text. It returns the structured record together with the raw decoded
// mapping, pre-validation, for export fidelity.
//
// Malformed model output never fails: the worst case is an almost-empty
// record with RawText intact so lexical scoring still works. Only a failing
// backend call is reported as an error. A nil client skips extraction
// entirely and returns the raw-text-only record.
func ParseJobDescription(ctx context.Context, client llm.Client, jdText string) (*types.JobDescription, map[string]any, error) {
	if client == nil {
		return &types.JobDescription{RawText: jdText}, map[string]any{}, nil
	}

	prompt := prompts.Format(prompts.MustGet("parsing.json", "extract-job-description"), map[string]string{
		"JobText": jdText,
	})

	out, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, nil, &APICallError{Message: "job description extraction", Cause: err}
	}

	raw := llm.ExtractJSONObject(out)

	jd := &types.JobDescription{}
	if !llm.DecodeResult(raw, jd) {
		// Lenient stage already salvaged matching fields; make sure the
		// record is anchored to the original text.
		jd.RawText = jdText
	}
	if jd.RawText == "" {
		jd.RawText = jdText
	}

	return jd, raw, nil
}
