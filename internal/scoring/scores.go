package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// neutralScore is the documented fallback when an engine has no signal to
// work with (no keywords, no similarities, backend unavailable).
const neutralScore = 0.5

// clamp01 bounds a score to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// round3 rounds to 3 decimals. Rounding is a correctness requirement, not
// cosmetic: ranking compares the raw floats.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// lexicalCoverage is the keyword-coverage proxy shared by the LLM-backed
// engines: tokens matching re are harvested from the jd text, case-folded,
// deduplicated in order of first appearance and capped at maxLexicalTokens;
// coverage is the fraction found in the resume text by substring match.
// Returns the neutral score when no tokens can be harvested.
func lexicalCoverage(resumeText, jdText string, re *regexp.Regexp) float64 {
	if jdText == "" {
		return neutralScore
	}

	tokens := re.FindAllString(jdText, -1)
	seen := make(map[string]bool, len(tokens))
	unique := make([]string, 0, maxLexicalTokens)
	for _, t := range tokens {
		tl := strings.ToLower(t)
		if seen[tl] {
			continue
		}
		seen[tl] = true
		unique = append(unique, tl)
		if len(unique) >= maxLexicalTokens {
			break
		}
	}
	if len(unique) == 0 {
		return neutralScore
	}

	rtext := strings.ToLower(resumeText)
	covered := 0
	for _, k := range unique {
		if strings.Contains(rtext, k) {
			covered++
		}
	}
	return round3(float64(covered) / float64(len(unique)))
}

// maxLexicalTokens caps the harvested keyword list for the coverage proxy.
const maxLexicalTokens = 50

// asFloat coerces a decoded JSON value to a float64, reporting whether the
// value was numeric (or a numeric string).
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// asString coerces a decoded JSON value to a string.
func asString(v any) string {
	s, _ := v.(string)
	return s
}
