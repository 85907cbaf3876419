package scoring

import (
	"context"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
	"github.com/jonathan/resume-ranker/internal/vector"
)

// SemanticParams are the tunables of the embedding engine. The weights and
// threshold are empirical defaults, kept configurable rather than hardcoded.
type SemanticParams struct {
	SimilarityWeight   float64 // weight of mean per-query max similarity
	CoverageWeight     float64 // weight of strong-hit coverage
	StrongHitThreshold float64 // per-query max similarity counting as a strong hit
	MaxChunkChars      int     // paragraph-merged chunk size cap
	TopK               int     // retrieved chunks per query
}

// DefaultSemanticParams returns the standard 0.7/0.3 blend with a 0.6
// strong-hit threshold, 800-character chunks and top-5 retrieval.
func DefaultSemanticParams() SemanticParams {
	return SemanticParams{
		SimilarityWeight:   0.7,
		CoverageWeight:     0.3,
		StrongHitThreshold: 0.6,
		MaxChunkChars:      800,
		TopK:               5,
	}
}

// IsZero reports whether the params are entirely unset.
func (p SemanticParams) IsZero() bool {
	return p == SemanticParams{}
}

// Query-derivation caps: the full posting text and its first lines form the
// similarity queries.
const (
	maxFullQueryChars = 2000
	maxHeadQueryChars = 1000
	headQueryLines    = 5
)

// SemanticEngine scores by embedding similarity: the resume is chunked and
// indexed, the job description yields similarity queries, and each query's
// best-matching chunks drive alignment and coverage. Every retrieved chunk is
// returned as evidence, in retrieval order, duplicates allowed.
type SemanticEngine struct {
	embedder vector.Embedder
	params   SemanticParams
}

// Name implements Engine.
func (e *SemanticEngine) Name() Name { return Semantic }

// Score implements Engine. With no usable queries or chunks it returns
// exactly the neutral pair (0.5, 0.5) instead of failing.
func (e *SemanticEngine) Score(ctx context.Context, resumeText string, jd *types.JobDescription) (*types.ScoreResult, error) {
	chunks := chunkText(resumeText, e.params.MaxChunkChars)
	queries := jdQueries(jd.Text())

	if len(chunks) == 0 || len(queries) == 0 {
		return &types.ScoreResult{Alignment: neutralScore, Coverage: neutralScore}, nil
	}

	index, err := vector.BuildIndex(ctx, e.embedder, chunks)
	if err != nil {
		return nil, err
	}

	var (
		sims     []float64
		strong   int
		evidence []types.EvidenceSnippet
	)
	for _, q := range queries {
		hits, err := index.Search(ctx, q, e.params.TopK)
		if err != nil {
			return nil, err
		}
		if len(hits) == 0 {
			sims = append(sims, 0.0)
			continue
		}
		for _, h := range hits {
			evidence = append(evidence, types.EvidenceSnippet{Text: h.Text, Score: h.Score})
		}
		// Hits are sorted descending; the first is the query's max.
		top := hits[0].Score
		sims = append(sims, top)
		if top >= e.params.StrongHitThreshold {
			strong++
		}
	}

	if len(sims) == 0 {
		return &types.ScoreResult{Alignment: neutralScore, Coverage: neutralScore}, nil
	}

	var sum float64
	for _, s := range sims {
		sum += s
	}
	avg := sum / float64(len(sims))
	coverage := float64(strong) / float64(len(queries))
	alignment := clamp01(e.params.SimilarityWeight*avg + e.params.CoverageWeight*coverage)

	return &types.ScoreResult{
		Alignment: round3(alignment),
		Coverage:  round3(coverage),
		Evidence:  evidence,
	}, nil
}

// chunkText merges consecutive paragraphs while the total stays under
// maxChars; a paragraph is never split mid-token. Oversized paragraphs become
// chunks of their own.
func chunkText(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultSemanticParams().MaxChunkChars
	}

	var paras []string
	for _, line := range strings.Split(text, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			paras = append(paras, p)
		}
	}

	var chunks []string
	cur := ""
	for _, p := range paras {
		if len(cur)+len(p)+1 <= maxChars {
			cur = strings.TrimSpace(cur + "\n" + p)
			continue
		}
		if cur != "" {
			chunks = append(chunks, cur)
		}
		cur = p
	}
	if cur != "" {
		chunks = append(chunks, cur)
	}
	return chunks
}

// jdQueries derives the similarity queries from the posting text: a prefix of
// the full text plus, when non-empty, the first lines joined and capped.
func jdQueries(jdText string) []string {
	if strings.TrimSpace(jdText) == "" {
		return nil
	}

	full := jdText
	if len(full) > maxFullQueryChars {
		full = full[:maxFullQueryChars]
	}
	queries := []string{full}

	var lines []string
	for _, line := range strings.Split(jdText, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			lines = append(lines, l)
			if len(lines) == headQueryLines {
				break
			}
		}
	}
	head := strings.Join(lines, " ")
	if len(head) > maxHeadQueryChars {
		head = head[:maxHeadQueryChars]
	}
	if head != "" {
		queries = append(queries, head)
	}
	return queries
}
