package scoring

import (
	"context"
	"regexp"

	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/prompts"
	"github.com/jonathan/resume-ranker/internal/types"
)

// rubricTokenRe harvests keyword candidates for the rubric engine's coverage
// proxy: alphabetic-leading tokens of total length >= 4.
var rubricTokenRe = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9_+.#-]{3,}`)

// RubricEngine asks the generative backend for a per-requirement rubric and
// an overall fit score, while computing keyword coverage lexically on its
// own. The overall score defaults to 0.5 whenever the backend is unavailable
// or its output has no numeric score; that exact default is the
// backend-unavailable signal and must not be changed.
type RubricEngine struct {
	client llm.Client
}

// Name implements Engine.
func (e *RubricEngine) Name() Name { return Rubric }

// Score implements Engine.
func (e *RubricEngine) Score(ctx context.Context, resumeText string, jd *types.JobDescription) (*types.ScoreResult, error) {
	jdText := jd.Text()
	coverage := lexicalCoverage(resumeText, jdText, rubricTokenRe)

	result := &types.ScoreResult{
		Alignment: neutralScore,
		Coverage:  coverage,
	}
	if e.client == nil {
		return result, nil
	}

	prompt := prompts.Format(prompts.MustGet("scoring.json", "rubric-detailed"), map[string]string{
		"ResumeText": resumeText,
		"JobText":    jdText,
	})

	out, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		// Backend failure keeps the neutral overall score.
		return result, nil
	}

	data := llm.ExtractJSONObject(out)

	if v, ok := asFloat(data["overall_score"]); ok {
		result.Alignment = round3(clamp01(v))
	}
	if expl := asString(data["overall_explanation"]); expl != "" {
		result.Explanation = expl
	} else if notes := asString(data["notes"]); notes != "" {
		result.Explanation = notes
	}
	result.PerRequirement = decodePerRequirement(data["per_requirement"])

	return result, nil
}

// decodePerRequirement leniently converts a decoded per_requirement list;
// malformed entries degrade to zero scores rather than failing.
func decodePerRequirement(v any) []types.RequirementScore {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}

	out := make([]types.RequirementScore, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		score, _ := asFloat(m["score"])
		out = append(out, types.RequirementScore{
			Requirement: asString(m["requirement"]),
			Score:       round3(clamp01(score)),
			Explanation: asString(m["explanation"]),
		})
	}
	return out
}
