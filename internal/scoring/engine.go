// Package scoring implements the pluggable scoring engines that estimate how
// well a candidate resume fits a job description. Four interchangeable
// strategies share one contract: a pure lexical heuristic, an LLM rubric, a
// semantic embedding matcher and a schema-validated structured rubric.
package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/types"
	"github.com/jonathan/resume-ranker/internal/vector"
)

// Name identifies a scoring engine. The set is closed: unknown names are
// rejected at configuration time, never mid-batch.
type Name string

// Engine names.
const (
	Heuristic  Name = "heuristic"
	Rubric     Name = "rubric"
	Semantic   Name = "semantic"
	Structured Name = "structured"
)

// Aliases kept for compatibility with the external selector spellings.
var aliases = map[string]Name{
	"resume_matcher": Rubric,
	"lindex":         Semantic,
	"langchain":      Structured,
}

// Names returns the canonical engine names in a stable order.
func Names() []string {
	return []string{string(Heuristic), string(Rubric), string(Semantic), string(Structured)}
}

// ParseName validates an engine name, resolving aliases. Matching is
// case-insensitive; unknown names are a configuration error.
func ParseName(s string) (Name, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch Name(normalized) {
	case Heuristic, Rubric, Semantic, Structured:
		return Name(normalized), nil
	}
	if name, ok := aliases[normalized]; ok {
		return name, nil
	}
	return "", fmt.Errorf("unknown scoring engine %q (valid: heuristic, rubric, semantic, structured)", s)
}

// Engine scores one resume against a parsed job description. Implementations
// clamp alignment and coverage to [0,1] and round to 3 decimals; the ranking
// pipeline compares the returned floats directly.
type Engine interface {
	Name() Name
	Score(ctx context.Context, resumeText string, jd *types.JobDescription) (*types.ScoreResult, error)
}

// Deps carries the backends an engine may need. Client may be nil for the
// engines with a documented neutral fallback (rubric, structured); Embedder
// is required by the semantic engine.
type Deps struct {
	Client   llm.Client
	Embedder vector.Embedder
	Semantic SemanticParams
}

// New constructs the named engine. Missing required backends surface here, at
// configuration time, before any candidate is processed.
func New(name Name, deps Deps) (Engine, error) {
	switch name {
	case Heuristic:
		return &HeuristicEngine{}, nil
	case Rubric:
		return &RubricEngine{client: deps.Client}, nil
	case Semantic:
		if deps.Embedder == nil {
			return nil, fmt.Errorf("semantic engine requires an embedding backend")
		}
		params := deps.Semantic
		if params.IsZero() {
			params = DefaultSemanticParams()
		}
		return &SemanticEngine{embedder: deps.Embedder, params: params}, nil
	case Structured:
		return &StructuredEngine{client: deps.Client}, nil
	}
	return nil, fmt.Errorf("unknown scoring engine %q", name)
}
