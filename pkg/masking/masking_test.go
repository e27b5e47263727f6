package masking

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRedact(t *testing.T) {
	m := New()

	tests := []struct {
		name     string
		in       string
		wantGone string
	}{
		{"api key assignment", "failed: api_key=sk_live_4f9a2 rejected", "sk_live_4f9a2"},
		{"colon form", "Authorization: abc123def", "abc123def"},
		{"bearer", "header Bearer eyJhbGciOiJIUzI1NiJ9.payload", "eyJhbGciOiJIUzI1NiJ9"},
		{"sk prefixed", "upstream said sk-proj-abcdef123456 is invalid", "sk-proj-abcdef123456"},
		{"fernet token", "blob gAAAAABkX1y2z3 could not be parsed", "gAAAAABkX1y2z3"},
		{"dsn password", "dial postgres://worker:hunter2@db:5432/reelpipe", "hunter2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := m.Redact(tt.in)
			assert.NotContains(t, out, tt.wantGone)
			assert.Contains(t, out, "***MASKED***")
		})
	}
}

func TestRedactLeavesPlainTextAlone(t *testing.T) {
	m := New()
	in := "clip 7 of 18 failed: ffmpeg exited with code 1"
	assert.Equal(t, in, m.Redact(in))
}

func TestRedactTruncate(t *testing.T) {
	m := New()
	long := strings.Repeat("x", 600)
	out := m.RedactTruncate(long, 500)
	assert.Len(t, out, 500+len("…(truncated)"))

	short := "all good"
	assert.Equal(t, short, m.RedactTruncate(short, 500))
}

func TestRedactTruncateKeepsRuneBoundaries(t *testing.T) {
	m := New()

	// "é" is 2 bytes; a cut at any odd offset lands mid-rune and must back
	// off rather than emit an invalid byte.
	in := strings.Repeat("é", 20)
	for max := 1; max < len(in); max++ {
		out := m.RedactTruncate(in, max)
		assert.True(t, utf8.ValidString(out), "max=%d produced invalid UTF-8", max)
		assert.LessOrEqual(t, len(out), max+len("…(truncated)"))
	}

	// 4-byte runes back off up to three bytes.
	emoji := "stderr: 🎬🎬🎬"
	out := m.RedactTruncate(emoji, len("stderr: ")+6)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "stderr: 🎬…(truncated)", out)
}
