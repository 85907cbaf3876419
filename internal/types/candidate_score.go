package types

// RequirementScore is one row of a per-requirement rubric: how well the
// candidate satisfies a single requirement from the posting.
type RequirementScore struct {
	Requirement string  `json:"requirement" mapstructure:"requirement"`
	Score       float64 `json:"score" mapstructure:"score"`
	Explanation string  `json:"explanation,omitempty" mapstructure:"explanation"`
}

// EvidenceSnippet is a retrieved resume fragment with its similarity score,
// supporting a semantic-engine result.
type EvidenceSnippet struct {
	Text  string  `json:"text" mapstructure:"text"`
	Score float64 `json:"score" mapstructure:"score"`
}

// ScoreResult is the raw output of a scoring engine for one candidate.
// Alignment and Coverage are clamped to [0,1] and rounded to 3 decimals by
// every engine; the ranking pipeline compares them as plain floats.
type ScoreResult struct {
	Alignment      float64
	Coverage       float64
	Explanation    string
	PerRequirement []RequirementScore
	Evidence       []EvidenceSnippet
}

// CandidateScore is one ranked candidate. The ranking pipeline owns
// construction of these records; engines only return ScoreResult values.
//
// Rank is 1-based and assigned only after the final sort; zero means unset.
type CandidateScore struct {
	ResumePath         string             `json:"resume_path"`
	Name               string             `json:"name,omitempty"`
	AlignmentScore     float64            `json:"alignment_score"`
	KeywordCoverage    float64            `json:"keyword_coverage"`
	Rank               int                `json:"rank,omitempty"`
	OverallExplanation string             `json:"overall_explanation,omitempty"`
	PerRequirement     []RequirementScore `json:"per_requirement,omitempty"`
	Evidence           []EvidenceSnippet  `json:"evidence,omitempty"`
}

// RankingResult owns the parsed job description and the candidates in final
// ranked order (alignment descending, coverage breaking ties). It is immutable
// after assembly; caller-side filtering must preserve order and ranks.
type RankingResult struct {
	JobDescription *JobDescription  `json:"jd"`
	Candidates     []CandidateScore `json:"candidates"`
}
