package scoring

import (
	"context"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Blend weights for the heuristic alignment formula: overall keyword coverage
// weighted against coverage of the first ten keywords.
const (
	heuristicCoverageWeight = 0.6
	heuristicTopWeight      = 0.4
	heuristicTopCount       = 10
	maxDerivedKeywords      = 30
	minKeywordLen           = 4
)

// HeuristicEngine scores by keyword coverage alone: no external calls,
// deterministic for identical inputs.
type HeuristicEngine struct{}

// Name implements Engine.
func (e *HeuristicEngine) Name() Name { return Heuristic }

// Score matches the job-description keyword list against the resume text.
// Alignment blends overall coverage with coverage of the first ten keywords;
// with no keywords at all the neutral pair (0.5, 0.5) is returned.
func (e *HeuristicEngine) Score(_ context.Context, resumeText string, jd *types.JobDescription) (*types.ScoreResult, error) {
	keywords := jdKeywords(jd)
	if len(keywords) == 0 {
		return &types.ScoreResult{Alignment: neutralScore, Coverage: neutralScore}, nil
	}

	text := strings.ToLower(resumeText)

	covered := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			covered++
		}
	}
	coverage := float64(covered) / float64(len(keywords))

	top := keywords
	if len(top) > heuristicTopCount {
		top = top[:heuristicTopCount]
	}
	topCovered := 0
	for _, k := range top {
		if strings.Contains(text, k) {
			topCovered++
		}
	}
	topCoverage := float64(topCovered) / float64(len(top))

	alignment := heuristicCoverageWeight*coverage + heuristicTopWeight*topCoverage

	return &types.ScoreResult{
		Alignment: round3(clamp01(alignment)),
		Coverage:  round3(clamp01(coverage)),
	}, nil
}

// jdKeywords builds the keyword list for heuristic matching: the parsed
// keyword list when present, otherwise tokens derived from requirements and
// responsibilities, otherwise from the raw posting text so that an unparsed
// job description still supports lexical scoring.
func jdKeywords(jd *types.JobDescription) []string {
	if jd == nil {
		return nil
	}

	if len(jd.Keywords) > 0 {
		out := make([]string, len(jd.Keywords))
		for i, k := range jd.Keywords {
			out[i] = strings.ToLower(k)
		}
		return out
	}

	sources := make([]string, 0, len(jd.Requirements)+len(jd.Responsibilities))
	sources = append(sources, jd.Requirements...)
	sources = append(sources, jd.Responsibilities...)

	derived := deriveKeywords(sources)
	if len(derived) > 0 {
		return derived
	}

	if jd.RawText != "" {
		return deriveKeywords([]string{jd.RawText})
	}
	return nil
}

// deriveKeywords tokenizes free text into lowercase keywords: whitespace
// split, length filter, punctuation trim, order-preserving dedupe, capped.
func deriveKeywords(sources []string) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, maxDerivedKeywords)
	for _, src := range sources {
		for _, token := range strings.Fields(src) {
			if len(token) < minKeywordLen {
				continue
			}
			k := strings.Trim(strings.ToLower(token), ",.()")
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			keywords = append(keywords, k)
			if len(keywords) >= maxDerivedKeywords {
				return keywords
			}
		}
	}
	return keywords
}
