package ranking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/scoring"
	"github.com/jonathan/resume-ranker/internal/types"
)

// scriptedEngine returns a fixed score per resume text.
type scriptedEngine struct {
	scores map[string]*types.ScoreResult
	errs   map[string]error
}

func (e *scriptedEngine) Name() scoring.Name { return "scripted" }

func (e *scriptedEngine) Score(_ context.Context, resumeText string, _ *types.JobDescription) (*types.ScoreResult, error) {
	if err, ok := e.errs[resumeText]; ok {
		return nil, err
	}
	if s, ok := e.scores[resumeText]; ok {
		return s, nil
	}
	return &types.ScoreResult{Alignment: 0.5, Coverage: 0.5}, nil
}

// identityExtract treats the path itself as the resume text.
func identityExtract(path string) (string, error) { return path, nil }

func TestRankConfigErrors(t *testing.T) {
	engine := &scriptedEngine{}
	p := NewPipeline(engine, nil, WithTextExtractor(identityExtract))

	_, _, err := p.Rank(context.Background(), "  ", []string{"a"})
	assert.ErrorIs(t, err, ErrNoJobDescription)

	_, _, err = p.Rank(context.Background(), "jd text", nil)
	assert.ErrorIs(t, err, ErrNoCandidates)

	p = NewPipeline(nil, nil, WithTextExtractor(identityExtract))
	_, _, err = p.Rank(context.Background(), "jd text", []string{"a"})
	assert.ErrorIs(t, err, ErrNoEngine)
}

func TestRankOrderingAndDenseRanks(t *testing.T) {
	engine := &scriptedEngine{scores: map[string]*types.ScoreResult{
		"low":  {Alignment: 0.2, Coverage: 0.9},
		"mid":  {Alignment: 0.5, Coverage: 0.5},
		"high": {Alignment: 0.9, Coverage: 0.1},
	}}
	p := NewPipeline(engine, nil, WithTextExtractor(identityExtract))

	result, _, err := p.Rank(context.Background(), "jd text", []string{"low", "mid", "high"})
	require.NoError(t, err)
	require.Len(t, result.Candidates, 3)

	assert.Equal(t, "high", result.Candidates[0].ResumePath)
	assert.Equal(t, "mid", result.Candidates[1].ResumePath)
	assert.Equal(t, "low", result.Candidates[2].ResumePath)
	for i, c := range result.Candidates {
		assert.Equal(t, i+1, c.Rank)
	}
}

func TestRankTieBreaks(t *testing.T) {
	t.Run("coverage breaks alignment ties", func(t *testing.T) {
		engine := &scriptedEngine{scores: map[string]*types.ScoreResult{
			"a": {Alignment: 0.5, Coverage: 0.3},
			"b": {Alignment: 0.5, Coverage: 0.7},
		}}
		p := NewPipeline(engine, nil, WithTextExtractor(identityExtract))

		result, _, err := p.Rank(context.Background(), "jd text", []string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, "b", result.Candidates[0].ResumePath)
		assert.Equal(t, "a", result.Candidates[1].ResumePath)
	})

	t.Run("submission order breaks exact ties", func(t *testing.T) {
		engine := &scriptedEngine{} // every candidate gets (0.5, 0.5)
		p := NewPipeline(engine, nil, WithTextExtractor(identityExtract))

		submitted := []string{"third", "first", "second"}
		result, _, err := p.Rank(context.Background(), "jd text", submitted)
		require.NoError(t, err)
		for i, path := range submitted {
			assert.Equal(t, path, result.Candidates[i].ResumePath)
			assert.Equal(t, i+1, result.Candidates[i].Rank)
		}
	})
}

func TestRankFailureIsolation(t *testing.T) {
	t.Run("extraction failure", func(t *testing.T) {
		engine := &scriptedEngine{scores: map[string]*types.ScoreResult{
			"ok": {Alignment: 0.8, Coverage: 0.8},
		}}
		extract := func(path string) (string, error) {
			if path == "broken" {
				return "", errors.New("unreadable file")
			}
			return path, nil
		}
		p := NewPipeline(engine, nil, WithTextExtractor(extract))

		result, _, err := p.Rank(context.Background(), "jd text", []string{"broken", "ok"})
		require.NoError(t, err, "one bad candidate must not abort the batch")
		require.Len(t, result.Candidates, 2)

		assert.Equal(t, "ok", result.Candidates[0].ResumePath)
		last := result.Candidates[1]
		assert.Equal(t, "broken", last.ResumePath)
		assert.Zero(t, last.AlignmentScore)
		assert.Zero(t, last.KeywordCoverage)
		assert.Equal(t, 2, last.Rank)
	})

	t.Run("scoring failure", func(t *testing.T) {
		engine := &scriptedEngine{
			scores: map[string]*types.ScoreResult{"ok": {Alignment: 0.8, Coverage: 0.8}},
			errs:   map[string]error{"bad": errors.New("backend exploded")},
		}
		p := NewPipeline(engine, nil, WithTextExtractor(identityExtract))

		result, _, err := p.Rank(context.Background(), "jd text", []string{"bad", "ok"})
		require.NoError(t, err)
		assert.Equal(t, "ok", result.Candidates[0].ResumePath)
		assert.Zero(t, result.Candidates[1].AlignmentScore)
	})
}

func TestRankParallelPreservesSubmissionOrder(t *testing.T) {
	engine := &scriptedEngine{} // uniform scores: final order must equal submission order
	p := NewPipeline(engine, nil, WithTextExtractor(identityExtract), WithWorkers(4))

	var submitted []string
	for i := 0; i < 20; i++ {
		submitted = append(submitted, fmt.Sprintf("resume-%02d", i))
	}

	result, _, err := p.Rank(context.Background(), "jd text", submitted)
	require.NoError(t, err)
	require.Len(t, result.Candidates, len(submitted))
	for i, path := range submitted {
		assert.Equal(t, path, result.Candidates[i].ResumePath)
	}
}

func TestRankWithoutClientKeepsRawText(t *testing.T) {
	engine := &scriptedEngine{}
	p := NewPipeline(engine, nil, WithTextExtractor(identityExtract))

	result, jdRaw, err := p.Rank(context.Background(), "Plain posting text", []string{"a"})
	require.NoError(t, err)
	require.NotNil(t, result.JobDescription)
	assert.Equal(t, "Plain posting text", result.JobDescription.RawText)
	assert.Empty(t, jdRaw)
}
