package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		in      string
		want    Name
		wantErr bool
	}{
		{in: "heuristic", want: Heuristic},
		{in: "rubric", want: Rubric},
		{in: "semantic", want: Semantic},
		{in: "structured", want: Structured},
		{in: "Heuristic", want: Heuristic},
		{in: "  rubric  ", want: Rubric},
		{in: "resume_matcher", want: Rubric},
		{in: "lindex", want: Semantic},
		{in: "langchain", want: Structured},
		{in: "keyword", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseName(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewEngine(t *testing.T) {
	t.Run("heuristic needs nothing", func(t *testing.T) {
		engine, err := New(Heuristic, Deps{})
		require.NoError(t, err)
		assert.Equal(t, Heuristic, engine.Name())
	})

	t.Run("rubric and structured accept a nil client", func(t *testing.T) {
		for _, name := range []Name{Rubric, Structured} {
			engine, err := New(name, Deps{})
			require.NoError(t, err)
			assert.Equal(t, name, engine.Name())
		}
	})

	t.Run("semantic requires an embedder", func(t *testing.T) {
		_, err := New(Semantic, Deps{})
		assert.Error(t, err)

		engine, err := New(Semantic, Deps{Embedder: &fakeEmbedder{}})
		require.NoError(t, err)
		assert.Equal(t, Semantic, engine.Name())
	})

	t.Run("semantic fills default params", func(t *testing.T) {
		engine, err := New(Semantic, Deps{Embedder: &fakeEmbedder{}})
		require.NoError(t, err)
		sem, ok := engine.(*SemanticEngine)
		require.True(t, ok)
		assert.Equal(t, DefaultSemanticParams(), sem.params)
	})

	t.Run("unknown name rejected", func(t *testing.T) {
		_, err := New(Name("bayesian"), Deps{})
		assert.Error(t, err)
	})
}
