package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDetailedRubric(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "minimal valid rubric",
			content: `{"overall_score": 0.5}`,
		},
		{
			name: "full rubric",
			content: `{
				"overall_score": 0.8,
				"overall_explanation": "good fit",
				"per_requirement": [
					{"requirement": "Go", "score": 0.9, "explanation": "strong"}
				]
			}`,
		},
		{
			name:    "missing overall_score",
			content: `{"overall_explanation": "no score"}`,
			wantErr: true,
		},
		{
			name:    "non-numeric score",
			content: `{"overall_score": "high"}`,
			wantErr: true,
		},
		{
			name:    "score out of range",
			content: `{"overall_score": 1.3}`,
			wantErr: true,
		},
		{
			name:    "per_requirement entry missing score",
			content: `{"overall_score": 0.5, "per_requirement": [{"requirement": "Go"}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(DetailedRubric, tt.content)
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.NotEmpty(t, verr.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRankingResult(t *testing.T) {
	valid := `{
		"jd": {"title": "Backend Engineer", "raw_text": "posting"},
		"candidates": [
			{"resume_path": "a.pdf", "alignment_score": 0.9, "keyword_coverage": 0.8, "rank": 1}
		]
	}`
	assert.NoError(t, Validate(RankingResult, valid))

	missingRank := `{
		"jd": {},
		"candidates": [
			{"resume_path": "a.pdf", "alignment_score": 0.9, "keyword_coverage": 0.8}
		]
	}`
	assert.Error(t, Validate(RankingResult, missingRank))
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("no_such_schema", `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidationErrorMessage(t *testing.T) {
	err := Validate(DetailedRubric, `{}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overall_score")
}
