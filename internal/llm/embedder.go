package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Embedder produces embedding vectors through the Gemini embedding API.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates an embedder for the given embedding model.
func NewEmbedder(ctx context.Context, apiKey, model string) (*Embedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	return &Embedder{client: client, model: model}, nil
}

// ModelName returns the configured embedding model name.
func (e *Embedder) ModelName() string {
	return e.model
}

// EmbedTexts returns one embedding vector per input text, in input order.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	em := e.client.EmbeddingModel(e.model)
	batch := em.NewBatch()
	for _, t := range texts {
		batch = batch.AddContent(genai.Text(t))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to embed texts: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d for %d texts", len(resp.Embeddings), len(texts))
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		vectors[i] = emb.Values
	}
	return vectors, nil
}

// Close releases the underlying client.
func (e *Embedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// Process-wide embedding handle, reused across ranking runs and replaced
// only when the configured model name changes. Readers holding the previous
// handle keep a fully initialized value; the swap is a single guarded
// assignment.
var (
	embedderMu     sync.Mutex
	sharedEmbedder *Embedder
)

// SharedEmbedder returns the cached process-wide embedder, initializing it on
// first use and reinitializing it when model differs from the cached handle's
// model. The previous handle is not closed: concurrent runs may still read it.
func SharedEmbedder(ctx context.Context, apiKey, model string) (*Embedder, error) {
	if model == "" {
		model = DefaultEmbeddingModel
	}

	embedderMu.Lock()
	defer embedderMu.Unlock()

	if sharedEmbedder != nil && sharedEmbedder.model == model {
		return sharedEmbedder, nil
	}

	e, err := NewEmbedder(ctx, apiKey, model)
	if err != nil {
		return nil, err
	}
	sharedEmbedder = e
	return e, nil
}
