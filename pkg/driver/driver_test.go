package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Run(t *testing.T) {
	runner := NewExecRunner()
	ctx := context.Background()

	t.Run("successful command", func(t *testing.T) {
		res, err := runner.Run(ctx, Request{
			Command: "/bin/sh",
			Args:    []string{"-c", "echo done"},
		})
		require.NoError(t, err)
		assert.Equal(t, "done\n", res.Stdout)
		assert.Greater(t, res.Duration, time.Duration(0))
	})

	t.Run("nonzero exit is transient by default", func(t *testing.T) {
		_, err := runner.Run(ctx, Request{
			Command: "/bin/sh",
			Args:    []string{"-c", "echo boom >&2; exit 1"},
		})
		require.Error(t, err)

		var genErr *GeneratorError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, KindTransient, genErr.Kind)
		assert.Equal(t, 1, genErr.ExitCode)
		assert.Contains(t, genErr.Stderr, "boom")
	})

	t.Run("exit code 2 is bad input", func(t *testing.T) {
		_, err := runner.Run(ctx, Request{
			Command: "/bin/sh",
			Args:    []string{"-c", "exit 2"},
		})
		var genErr *GeneratorError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, KindBadInput, genErr.Kind)
	})

	t.Run("timeout", func(t *testing.T) {
		_, err := runner.Run(ctx, Request{
			Command: "/bin/sh",
			Args:    []string{"-c", "sleep 5"},
			Timeout: 50 * time.Millisecond,
		})
		var genErr *GeneratorError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, KindTimeout, genErr.Kind)
	})

	t.Run("env reaches the child", func(t *testing.T) {
		res, err := runner.Run(ctx, Request{
			Command: "/bin/sh",
			Args:    []string{"-c", "echo $GEN_MARKER"},
			Env:     map[string]string{"GEN_MARKER": "value-42"},
		})
		require.NoError(t, err)
		assert.Equal(t, "value-42\n", res.Stdout)
	})

	t.Run("stderr credentials are masked", func(t *testing.T) {
		_, err := runner.Run(ctx, Request{
			Command: "/bin/sh",
			Args:    []string{"-c", "echo 'request failed, api_key=sk-deadbeefdeadbeef' >&2; exit 1"},
		})
		var genErr *GeneratorError
		require.ErrorAs(t, err, &genErr)
		assert.NotContains(t, genErr.Stderr, "sk-deadbeefdeadbeef")
		assert.Contains(t, genErr.Stderr, "***MASKED***")
		assert.NotContains(t, genErr.Error(), "sk-deadbeefdeadbeef")
	})

	t.Run("long stderr is truncated", func(t *testing.T) {
		_, err := runner.Run(ctx, Request{
			Command: "/bin/sh",
			Args:    []string{"-c", "yes x | head -c 2000 >&2; exit 1"},
		})
		var genErr *GeneratorError
		require.ErrorAs(t, err, &genErr)
		assert.LessOrEqual(t, len(genErr.Stderr), stderrExcerptMax+len("…(truncated)"))
		assert.Contains(t, genErr.Stderr, "truncated")
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		timedOut bool
		exitCode int
		stderr   string
		want     ErrorKind
	}{
		{"timeout wins", true, 1, "rate limit exceeded", KindTimeout},
		{"rate limit", false, 1, "HTTP 429 Too Many Requests", KindRateLimited},
		{"quota", false, 1, "insufficient credits remaining", KindQuotaExhausted},
		{"auth", false, 1, "401 Unauthorized: invalid api key", KindAuthFailed},
		{"bad input", false, 1, "bad request: prompt too long", KindBadInput},
		{"exit 2 convention", false, 2, "", KindBadInput},
		{"default transient", false, 1, "connection reset by peer", KindTransient},
		{"rate limit beats auth text order", false, 1, "429 rate limited; token refreshed", KindRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.timedOut, tt.exitCode, tt.stderr))
		})
	}
}

func TestErrorKind_Retryable(t *testing.T) {
	assert.True(t, KindTransient.Retryable())
	assert.True(t, KindRateLimited.Retryable())
	assert.True(t, KindTimeout.Retryable())
	assert.False(t, KindAuthFailed.Retryable())
	assert.False(t, KindBadInput.Retryable())
	assert.False(t, KindQuotaExhausted.Retryable())
}

func TestNarrationDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "narration_001.mp3")

	// 16000 bytes at 128 kbps CBR is exactly one second.
	require.NoError(t, os.WriteFile(path, make([]byte, 16000), 0o644))

	d, err := NarrationDuration(path)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-9)

	_, err = NarrationDuration(filepath.Join(dir, "missing.mp3"))
	assert.Error(t, err)
}
