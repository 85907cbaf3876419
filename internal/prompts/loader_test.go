package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Run("existing prompts load", func(t *testing.T) {
		for file, keys := range map[string][]string{
			"parsing.json":   {"extract-job-description", "extract-resume"},
			"scoring.json":   {"rubric-overall", "rubric-detailed", "structured-rubric"},
			"tailoring.json": {"tailor-resume"},
		} {
			for _, key := range keys {
				prompt, err := Get(file, key)
				require.NoError(t, err, "%s/%s", file, key)
				assert.NotEmpty(t, prompt)
			}
		}
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := Get("parsing.json", "no-such-key")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Get("nope.json", "any")
		assert.Error(t, err)
	})
}

func TestMustGetPanics(t *testing.T) {
	assert.Panics(t, func() { MustGet("parsing.json", "no-such-key") })
	assert.NotPanics(t, func() { MustGet("parsing.json", "extract-resume") })
}

func TestFormat(t *testing.T) {
	out := Format("Hello {{.Name}}, you scored {{.Score}}.", map[string]string{
		"Name":  "Jordan",
		"Score": "0.9",
	})
	assert.Equal(t, "Hello Jordan, you scored 0.9.", out)

	// Unknown placeholders are left in place.
	out = Format("{{.Missing}} stays", nil)
	assert.Equal(t, "{{.Missing}} stays", out)
}

func TestPromptPlaceholders(t *testing.T) {
	jd := MustGet("parsing.json", "extract-job-description")
	assert.Contains(t, jd, "{{.JobText}}")

	resume := MustGet("parsing.json", "extract-resume")
	assert.Contains(t, resume, "{{.ResumeText}}")

	rubric := MustGet("scoring.json", "rubric-detailed")
	assert.Contains(t, rubric, "{{.ResumeText}}")
	assert.Contains(t, rubric, "{{.JobText}}")

	tailor := MustGet("tailoring.json", "tailor-resume")
	for _, ph := range []string{"{{.Tone}}", "{{.Length}}", "{{.ResumeJSON}}", "{{.JDJSON}}"} {
		assert.Contains(t, tailor, ph)
	}
}
