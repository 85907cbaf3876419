package vector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// axisEmbedder assigns each distinct text the next basis vector, so every
// chunk is orthogonal to the others and identical texts match exactly.
type axisEmbedder struct {
	assigned map[string][]float32
	next     int
	err      error
}

func newAxisEmbedder() *axisEmbedder {
	return &axisEmbedder{assigned: make(map[string][]float32)}
}

func (e *axisEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := e.assigned[t]; ok {
			out[i] = v
			continue
		}
		v := make([]float32, 8)
		v[e.next%8] = 1
		e.next++
		e.assigned[t] = v
		out[i] = v
	}
	return out, nil
}

func TestBuildIndex(t *testing.T) {
	t.Run("nil embedder rejected", func(t *testing.T) {
		_, err := BuildIndex(context.Background(), nil, []string{"a"})
		assert.Error(t, err)
	})

	t.Run("empty chunks yields empty index", func(t *testing.T) {
		ix, err := BuildIndex(context.Background(), newAxisEmbedder(), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, ix.Len())
	})

	t.Run("embedding error propagates", func(t *testing.T) {
		e := newAxisEmbedder()
		e.err = errors.New("backend down")
		_, err := BuildIndex(context.Background(), e, []string{"a"})
		assert.Error(t, err)
	})

	t.Run("chunks indexed", func(t *testing.T) {
		ix, err := BuildIndex(context.Background(), newAxisEmbedder(), []string{"a", "b", "c"})
		require.NoError(t, err)
		assert.Equal(t, 3, ix.Len())
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("exact match first", func(t *testing.T) {
		e := newAxisEmbedder()
		ix, err := BuildIndex(ctx, e, []string{"alpha", "beta", "gamma"})
		require.NoError(t, err)

		hits, err := ix.Search(ctx, "beta", 2)
		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "beta", hits[0].Text)
		assert.InDelta(t, 1.0, hits[0].Score, 1e-9)
		assert.InDelta(t, 0.0, hits[1].Score, 1e-9)
	})

	t.Run("topK caps results", func(t *testing.T) {
		e := newAxisEmbedder()
		ix, err := BuildIndex(ctx, e, []string{"a", "b", "c", "d"})
		require.NoError(t, err)

		hits, err := ix.Search(ctx, "a", 2)
		require.NoError(t, err)
		assert.Len(t, hits, 2)
	})

	t.Run("empty index returns nothing", func(t *testing.T) {
		ix, err := BuildIndex(ctx, newAxisEmbedder(), nil)
		require.NoError(t, err)
		hits, err := ix.Search(ctx, "anything", 5)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("non-positive topK returns nothing", func(t *testing.T) {
		ix, err := BuildIndex(ctx, newAxisEmbedder(), []string{"a"})
		require.NoError(t, err)
		hits, err := ix.Search(ctx, "a", 0)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
		{name: "length mismatch", a: []float32{1}, b: []float32{1, 0}, want: 0},
		{name: "both empty", a: nil, b: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}
