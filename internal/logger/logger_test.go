package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New(false, false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = New(true, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "under limit", in: "short", limit: 10, want: "short"},
		{name: "exactly at limit", in: "12345", limit: 5, want: "12345"},
		{name: "over limit", in: "abcdefghij", limit: 4, want: "abcd..."},
		{name: "zero limit", in: "anything", limit: 0, want: ""},
		{name: "whitespace trimmed first", in: "  padded  ", limit: 20, want: "padded"},
		{name: "multibyte runes", in: "héllo wörld", limit: 5, want: "héllo..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateForLog(tt.in, tt.limit))
		})
	}
}
