package scoring

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/prompts"
	"github.com/jonathan/resume-ranker/internal/schemas"
	"github.com/jonathan/resume-ranker/internal/types"
)

// structuredTokenRe is the structured engine's coverage-proxy tokenizer. It
// requires one more trailing character than the rubric engine's, matching the
// original orchestration behavior.
var structuredTokenRe = regexp.MustCompile(`[A-Za-z][A-Za-z0-9_+.#-]{4,}`)

// detailedRubric is the strict target schema for the structured engine.
type detailedRubric struct {
	PerRequirement     []types.RequirementScore `json:"per_requirement" mapstructure:"per_requirement"`
	OverallScore       float64                  `json:"overall_score" mapstructure:"overall_score"`
	OverallExplanation string                   `json:"overall_explanation" mapstructure:"overall_explanation"`
}

// StructuredEngine requests a schema-validated per-requirement rubric object
// from the generative backend. Any decode or validation failure degrades to
// the neutral overall score with an empty rubric; errors never propagate to
// the ranking pipeline from this path.
type StructuredEngine struct {
	client llm.Client
}

// Name implements Engine.
func (e *StructuredEngine) Name() Name { return Structured }

// Score implements Engine.
func (e *StructuredEngine) Score(ctx context.Context, resumeText string, jd *types.JobDescription) (*types.ScoreResult, error) {
	jdText := jd.Text()
	coverage := lexicalCoverage(resumeText, jdText, structuredTokenRe)

	neutral := &types.ScoreResult{
		Alignment: neutralScore,
		Coverage:  coverage,
	}
	if e.client == nil {
		return neutral, nil
	}

	prompt := prompts.Format(prompts.MustGet("scoring.json", "structured-rubric"), map[string]string{
		"ResumeText": resumeText,
		"JobText":    jdText,
	})

	out, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return neutral, nil
	}

	raw := llm.ExtractJSONObject(out)
	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return neutral, nil
	}
	if err := schemas.Validate(schemas.DetailedRubric, string(rawJSON)); err != nil {
		return neutral, nil
	}

	var rubric detailedRubric
	llm.DecodeResult(raw, &rubric)

	perReq := make([]types.RequirementScore, 0, len(rubric.PerRequirement))
	for _, r := range rubric.PerRequirement {
		r.Score = round3(clamp01(r.Score))
		perReq = append(perReq, r)
	}
	if len(perReq) == 0 {
		perReq = nil
	}

	return &types.ScoreResult{
		Alignment:      round3(clamp01(rubric.OverallScore)),
		Coverage:       coverage,
		Explanation:    rubric.OverallExplanation,
		PerRequirement: perReq,
	}, nil
}
