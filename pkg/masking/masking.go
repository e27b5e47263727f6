// Package masking redacts credential material from text destined for logs
// or the task error log: generator stderr, driver errors, board payloads.
package masking

import (
	"regexp"
	"unicode/utf8"
)

// CompiledPattern is a pre-compiled redaction rule.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns covers the credential shapes handed to generator
// subprocesses. Order matters: more specific patterns run first.
var builtinPatterns = []*CompiledPattern{
	{
		Name:        "api_key_assignment",
		Regex:       regexp.MustCompile(`(?i)((?:api[_-]?key|token|secret|password|authorization)\s*[=:]\s*)\S+`),
		Replacement: `$1***MASKED***`,
	},
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._~+/-]+=*`),
		Replacement: `Bearer ***MASKED***`,
	},
	{
		Name:        "sk_prefixed_key",
		Regex:       regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{8,}\b`),
		Replacement: `***MASKED***`,
	},
	{
		Name:        "fernet_token",
		Regex:       regexp.MustCompile(`\bgAAAAA[A-Za-z0-9_-]+={0,2}`),
		Replacement: `***MASKED***`,
	},
	{
		Name:        "postgres_dsn_password",
		Regex:       regexp.MustCompile(`(postgres(?:ql)?://[^:/\s]+:)[^@\s]+(@)`),
		Replacement: `$1***MASKED***$2`,
	},
}

// Masker applies the built-in redaction patterns.
type Masker struct {
	patterns []*CompiledPattern
}

// New creates a Masker with the built-in pattern set.
func New() *Masker {
	return &Masker{patterns: builtinPatterns}
}

// Redact replaces credential material in s.
func (m *Masker) Redact(s string) string {
	for _, p := range m.patterns {
		s = p.Regex.ReplaceAllString(s, p.Replacement)
	}
	return s
}

// RedactTruncate redacts and then truncates to at most max bytes, backing
// off to a rune boundary so a multi-byte character is never split. Stderr
// excerpts carried into logs are capped at 500 bytes by the driver.
func (m *Masker) RedactTruncate(s string, max int) string {
	s = m.Redact(s)
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…(truncated)"
}
