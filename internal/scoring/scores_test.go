package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.3))
	assert.Equal(t, 0.0, clamp01(0))
	assert.Equal(t, 0.42, clamp01(0.42))
	assert.Equal(t, 1.0, clamp01(1))
	assert.Equal(t, 1.0, clamp01(2.7))
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 0.667, round3(2.0/3.0))
	assert.Equal(t, 0.5, round3(0.5))
	assert.Equal(t, 0.123, round3(0.1234))
	assert.Equal(t, 0.124, round3(0.1235))
}

func TestLexicalCoverage(t *testing.T) {
	t.Run("empty jd text is neutral", func(t *testing.T) {
		assert.Equal(t, 0.5, lexicalCoverage("resume", "", rubricTokenRe))
	})

	t.Run("no harvestable tokens is neutral", func(t *testing.T) {
		assert.Equal(t, 0.5, lexicalCoverage("resume", "a b c !!", rubricTokenRe))
	})

	t.Run("case-insensitive substring match", func(t *testing.T) {
		got := lexicalCoverage("I know PYTHON well", "Python Postgres", rubricTokenRe)
		assert.Equal(t, 0.5, got)
	})

	t.Run("full coverage", func(t *testing.T) {
		got := lexicalCoverage("python postgres", "Python Postgres", rubricTokenRe)
		assert.Equal(t, 1.0, got)
	})

	t.Run("duplicate tokens counted once", func(t *testing.T) {
		got := lexicalCoverage("python", "Python python PYTHON docker", rubricTokenRe)
		assert.Equal(t, 0.5, got)
	})

	t.Run("structured tokenizer needs longer tokens", func(t *testing.T) {
		// "role" has four characters: harvested by the rubric tokenizer,
		// skipped by the structured one.
		assert.Equal(t, 1.0, lexicalCoverage("role", "role", rubricTokenRe))
		assert.Equal(t, 0.5, lexicalCoverage("role", "role", structuredTokenRe))
	})
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{name: "float64", in: 0.7, want: 0.7, wantOK: true},
		{name: "int", in: 1, want: 1, wantOK: true},
		{name: "numeric string", in: " 0.25 ", want: 0.25, wantOK: true},
		{name: "non-numeric string", in: "high", wantOK: false},
		{name: "nil", in: nil, wantOK: false},
		{name: "bool", in: true, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := asFloat(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "hello", asString("hello"))
	assert.Equal(t, "", asString(nil))
	assert.Equal(t, "", asString(12))
}
