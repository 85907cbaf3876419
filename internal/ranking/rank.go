// Package ranking implements the candidate ranking pipeline: parse the job
// description once, score every resume with the selected engine under
// per-candidate failure isolation, then sort and assign dense ranks.
package ranking

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/scoring"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Configuration errors, raised before any candidate work begins.
var (
	ErrNoJobDescription = errors.New("no job description supplied")
	ErrNoCandidates     = errors.New("no candidate resumes supplied")
	ErrNoEngine         = errors.New("no scoring engine configured")
)

// TextExtractor turns a resume path into plain text. Failures are recovered
// at the per-candidate boundary.
type TextExtractor func(path string) (string, error)

// Pipeline ranks a set of candidate resumes against one job description.
type Pipeline struct {
	engine  scoring.Engine
	client  llm.Client // used for JD parsing and candidate-name extraction; may be nil
	extract TextExtractor
	logger  *zap.Logger
	workers int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTextExtractor overrides the default file-based text extraction.
func WithTextExtractor(extract TextExtractor) Option {
	return func(p *Pipeline) { p.extract = extract }
}

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithWorkers enables bounded parallel candidate scoring. Values below 2 keep
// the sequential path.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// NewPipeline builds a ranking pipeline around the given engine. client may
// be nil; the pipeline then skips generative JD parsing and name extraction
// and relies on the raw-text lexical path.
func NewPipeline(engine scoring.Engine, client llm.Client, opts ...Option) *Pipeline {
	p := &Pipeline{
		engine:  engine,
		client:  client,
		extract: ingestion.ExtractText,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Rank scores every resume against the job description and returns the
// ranked result plus the raw decoded JD mapping for export.
//
// One candidate's extraction or scoring failure never aborts the batch: the
// candidate is recorded with zero scores and the run continues. Ranks are a
// dense 1..N permutation assigned strictly after the final sort.
func (p *Pipeline) Rank(ctx context.Context, jdText string, resumePaths []string) (*types.RankingResult, map[string]any, error) {
	if strings.TrimSpace(jdText) == "" {
		return nil, nil, ErrNoJobDescription
	}
	if len(resumePaths) == 0 {
		return nil, nil, ErrNoCandidates
	}
	if p.engine == nil {
		return nil, nil, ErrNoEngine
	}

	jd, jdRaw, err := parsing.ParseJobDescription(ctx, p.client, jdText)
	if err != nil {
		return nil, nil, err
	}
	p.logger.Debug("job description parsed",
		zap.String("title", jd.Title),
		zap.Int("requirements", len(jd.Requirements)),
		zap.Int("keywords", len(jd.Keywords)))

	// Candidates keep their submission index in the slice, so the stable
	// sort below falls back to submission order on exact score ties even
	// when scoring ran in parallel.
	candidates := make([]types.CandidateScore, len(resumePaths))

	if p.workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)
		for i, path := range resumePaths {
			g.Go(func() error {
				candidates[i] = p.scoreCandidate(gctx, path, jd)
				return nil
			})
		}
		// Workers only report success; failures are isolated per candidate.
		_ = g.Wait()
	} else {
		for i, path := range resumePaths {
			candidates[i] = p.scoreCandidate(ctx, path, jd)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].AlignmentScore != candidates[j].AlignmentScore {
			return candidates[i].AlignmentScore > candidates[j].AlignmentScore
		}
		return candidates[i].KeywordCoverage > candidates[j].KeywordCoverage
	})
	for i := range candidates {
		candidates[i].Rank = i + 1
	}

	return &types.RankingResult{JobDescription: jd, Candidates: candidates}, jdRaw, nil
}

// scoreCandidate runs the extract → parse → score sequence for one resume.
// Any failure yields the zero-scored placeholder record instead of an error.
func (p *Pipeline) scoreCandidate(ctx context.Context, path string, jd *types.JobDescription) types.CandidateScore {
	failed := types.CandidateScore{ResumePath: path}

	text, err := p.extract(path)
	if err != nil {
		p.logger.Warn("text extraction failed", zap.String("resume", path), zap.Error(err))
		return failed
	}

	name := ""
	if p.client != nil {
		resume, _, err := parsing.ParseResume(ctx, p.client, text)
		if err != nil {
			p.logger.Debug("resume extraction failed", zap.String("resume", path), zap.Error(err))
		} else {
			name = resume.Name
		}
	}

	result, err := p.engine.Score(ctx, text, jd)
	if err != nil {
		p.logger.Warn("scoring failed",
			zap.String("resume", path),
			zap.String("engine", string(p.engine.Name())),
			zap.Error(err))
		return failed
	}

	return types.CandidateScore{
		ResumePath:         path,
		Name:               name,
		AlignmentScore:     result.Alignment,
		KeywordCoverage:    result.Coverage,
		OverallExplanation: result.Explanation,
		PerRequirement:     result.PerRequirement,
		Evidence:           result.Evidence,
	}
}
