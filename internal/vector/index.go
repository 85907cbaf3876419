// Package vector provides a small in-memory embedding index used by the
// semantic scoring engine: chunks are embedded once, then queried by cosine
// similarity.
package vector

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// Embedder produces one embedding vector per input text, in input order.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Hit is one retrieved chunk with its similarity score. Higher is more
// similar; scores are comparable across queries within one index.
type Hit struct {
	Text  string
	Score float64
}

// Index holds embedded chunks for similarity search.
type Index struct {
	embedder Embedder
	chunks   []string
	vectors  [][]float32
}

// BuildIndex embeds all chunks and returns a searchable index.
func BuildIndex(ctx context.Context, embedder Embedder, chunks []string) (*Index, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}
	if len(chunks) == 0 {
		return &Index{embedder: embedder}, nil
	}

	vectors, err := embedder.EmbedTexts(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("vector count mismatch: %d vectors for %d chunks", len(vectors), len(chunks))
	}

	return &Index{embedder: embedder, chunks: chunks, vectors: vectors}, nil
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int {
	return len(ix.chunks)
}

// Search embeds the query and returns the topK most similar chunks in
// descending similarity order.
func (ix *Index) Search(ctx context.Context, query string, topK int) ([]Hit, error) {
	if len(ix.chunks) == 0 || topK <= 0 {
		return nil, nil
	}

	qvecs, err := ix.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(qvecs) != 1 {
		return nil, fmt.Errorf("expected one query vector, got %d", len(qvecs))
	}

	hits := make([]Hit, 0, len(ix.chunks))
	for i, v := range ix.vectors {
		hits = append(hits, Hit{Text: ix.chunks[i], Score: CosineSimilarity(qvecs[0], v)})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

// CosineSimilarity returns the cosine similarity of two vectors, or 0 when
// either has zero magnitude or the lengths differ.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
