package scoring

import (
	"context"
	"strings"

	"github.com/jonathan/resume-ranker/internal/llm"
)

// fakeClient is a canned-response generative backend for engine tests.
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

// fakeEmbedder maps texts onto fixed two-dimensional vectors by keyword so
// similarity outcomes are fully predictable.
type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		switch {
		case strings.Contains(strings.ToLower(t), "golang"):
			out[i] = []float32{1, 0}
		case strings.Contains(strings.ToLower(t), "retail"):
			out[i] = []float32{0, 1}
		default:
			out[i] = []float32{1, 1}
		}
	}
	return out, nil
}
