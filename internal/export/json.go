// Package export serializes ranking and tailoring results to JSON and CSV.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-ranker/internal/schemas"
	"github.com/jonathan/resume-ranker/internal/types"
)

// rankingEnvelope is the on-disk shape of a ranking run. jd_raw carries the
// untyped decoder output so nothing the model said is lost to the schema.
type rankingEnvelope struct {
	JobDescription *types.JobDescription  `json:"jd"`
	JobRaw         map[string]any         `json:"jd_raw,omitempty"`
	Candidates     []types.CandidateScore `json:"candidates"`
}

// MarshalRanking renders a ranking result with its raw JD mapping as
// indented JSON and checks it against the ranking result schema.
func MarshalRanking(result *types.RankingResult, jdRaw map[string]any) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("nil ranking result")
	}
	env := rankingEnvelope{
		JobDescription: result.JobDescription,
		JobRaw:         jdRaw,
		Candidates:     result.Candidates,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal ranking result: %w", err)
	}
	if err := schemas.Validate(schemas.RankingResult, string(data)); err != nil {
		return nil, fmt.Errorf("ranking result failed schema validation: %w", err)
	}
	return data, nil
}

// WriteRankingJSON writes the ranking envelope to path.
func WriteRankingJSON(path string, result *types.RankingResult, jdRaw map[string]any) error {
	data, err := MarshalRanking(result, jdRaw)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write ranking JSON: %w", err)
	}
	return nil
}

// TailoringArtifacts is the on-disk shape of a single-resume tailoring run.
type TailoringArtifacts struct {
	Resume           *types.Resume         `json:"resume"`
	ResumeRaw        map[string]any        `json:"resume_raw,omitempty"`
	JobDescription   *types.JobDescription `json:"jd"`
	JobRaw           map[string]any        `json:"jd_raw,omitempty"`
	TailoredMarkdown string                `json:"tailored_markdown"`
	Alignment        float64               `json:"alignment_score"`
	KeywordCoverage  float64               `json:"keyword_coverage"`
}

// WriteTailoringJSON writes the tailoring artifacts to path as indented JSON.
func WriteTailoringJSON(path string, artifacts *TailoringArtifacts) error {
	if artifacts == nil {
		return fmt.Errorf("nil tailoring artifacts")
	}
	data, err := json.MarshalIndent(artifacts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tailoring artifacts: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write tailoring JSON: %w", err)
	}
	return nil
}
