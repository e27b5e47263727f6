// Package driver runs the external generator commands. Generators are
// plain subprocesses: arguments in, files out, exit code and stderr back.
// Credentials travel through the child environment only; stderr is
// redacted and truncated before it reaches any log or error.
package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/reelworks/reelpipe/pkg/masking"
)

// stderrExcerptMax caps how much generator stderr is carried into errors.
const stderrExcerptMax = 500

// Request describes one generator invocation.
type Request struct {
	Command string
	Args    []string

	// Env entries are appended to the parent environment as KEY=VALUE.
	// Decrypted credentials go here and nowhere else.
	Env map[string]string

	Timeout time.Duration
	WorkDir string
}

// Result is a successful invocation.
type Result struct {
	Duration time.Duration
	Stdout   string
}

// Runner executes generator commands. The pipeline depends on this
// interface; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, req Request) (*Result, error)
}

// ExecRunner runs generators as local subprocesses.
type ExecRunner struct {
	masker *masking.Masker
}

// NewExecRunner creates an ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{masker: masking.New()}
}

// Run executes the command, enforcing the timeout through the context.
// On failure it returns a *GeneratorError with classified kind and a
// redacted stderr excerpt.
func (r *ExecRunner) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Command == "" {
		return nil, fmt.Errorf("empty generator command")
	}

	runCtx := ctx
	var cancel context.CancelFunc
	if req.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, req.Command, req.Args...)
	cmd.Dir = req.WorkDir
	cmd.Env = os.Environ()
	for k, v := range req.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err == nil {
		return &Result{Duration: elapsed, Stdout: stdout.String()}, nil
	}

	timedOut := errors.Is(runCtx.Err(), context.DeadlineExceeded)
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	rawStderr := stderr.String()
	genErr := &GeneratorError{
		Command:  req.Command,
		Kind:     Classify(timedOut, exitCode, rawStderr),
		ExitCode: exitCode,
		Stderr:   r.masker.RedactTruncate(rawStderr, stderrExcerptMax),
		Duration: elapsed,
	}
	return nil, genErr
}

// NarrationDuration derives a narration clip's length in seconds from its
// file size. The TTS generator emits 128 kbps constant-bitrate MP3, so
// size maps linearly to duration.
func NarrationDuration(path string) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("reading narration file: %w", err)
	}
	const bitrate = 128_000.0
	return float64(info.Size()) * 8 / bitrate, nil
}
