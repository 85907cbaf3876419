package parsing

import (
	"context"

	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/prompts"
	"github.com/jonathan/resume-ranker/internal/types"
)

// contactFields are hoisted from a nested "contact" object when the model
// groups them, since the Resume schema keeps them top-level.
var contactFields = []string{"email", "phone", "location", "linkedin", "github", "website"}

// ParseResume extracts a structured Resume from raw resume text, using the
// same two-stage lenient decoding protocol as ParseJobDescription. An empty
// Resume with the raw mapping is the worst case for malformed output.
func ParseResume(ctx context.Context, client llm.Client, resumeText string) (*types.Resume, map[string]any, error) {
	if client == nil {
		return &types.Resume{}, map[string]any{}, nil
	}

	prompt := prompts.Format(prompts.MustGet("parsing.json", "extract-resume"), map[string]string{
		"ResumeText": resumeText,
	})

	out, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, nil, &APICallError{Message: "resume extraction", Cause: err}
	}

	raw := llm.ExtractJSONObject(out)
	hoistContact(raw)

	resume := &types.Resume{}
	llm.DecodeResult(raw, resume)

	return resume, raw, nil
}

// hoistContact copies fields from a nested contact object to the top level
// when they are not already present there.
func hoistContact(raw map[string]any) {
	contact, ok := raw["contact"].(map[string]any)
	if !ok {
		return
	}
	for _, field := range contactFields {
		if _, exists := raw[field]; exists {
			continue
		}
		if v, ok := contact[field]; ok {
			raw[field] = v
		}
	}
}
