package driver

import (
	"fmt"
	"regexp"
	"time"
)

// ErrorKind classifies a generator failure for the retry policy.
type ErrorKind string

// Failure classes.
const (
	// KindTransient covers failures worth retrying with backoff: network
	// flakes, 5xx responses, unclassified nonzero exits.
	KindTransient ErrorKind = "transient"

	// KindRateLimited means the upstream service throttled us. Retry after
	// a service-wide pause.
	KindRateLimited ErrorKind = "rate_limited"

	// KindTimeout means the stage deadline elapsed before the generator
	// finished.
	KindTimeout ErrorKind = "timeout"

	// KindAuthFailed means credentials were rejected. Retrying without
	// operator action cannot succeed.
	KindAuthFailed ErrorKind = "auth_failed"

	// KindQuotaExhausted means the upstream account is out of credits.
	KindQuotaExhausted ErrorKind = "quota_exhausted"

	// KindBadInput means the generator rejected its arguments. Retrying the
	// same input cannot succeed.
	KindBadInput ErrorKind = "bad_input"
)

// Retryable reports whether the failure class is worth an automatic retry.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindTransient, KindRateLimited, KindTimeout:
		return true
	}
	return false
}

// stderr classification patterns, most specific first. The first match wins.
var classifiers = []struct {
	kind ErrorKind
	re   *regexp.Regexp
}{
	{KindRateLimited, regexp.MustCompile(`(?i)rate.?limit|too many requests|\b429\b`)},
	{KindQuotaExhausted, regexp.MustCompile(`(?i)quota|insufficient credit|payment required|\b402\b`)},
	{KindAuthFailed, regexp.MustCompile(`(?i)unauthorized|invalid.{0,8}(api.?key|token)|authentication|forbidden|\b401\b|\b403\b`)},
	{KindBadInput, regexp.MustCompile(`(?i)invalid (input|argument|request)|bad request|unprocessable|\b400\b|\b422\b`)},
}

// Classify maps an exit outcome and stderr text to an ErrorKind. The
// stderr passed here may be raw; the result never carries it.
func Classify(timedOut bool, exitCode int, stderr string) ErrorKind {
	if timedOut {
		return KindTimeout
	}
	for _, c := range classifiers {
		if c.re.MatchString(stderr) {
			return c.kind
		}
	}
	// Exit code 2 is the documented "unusable input" convention for the
	// generator commands; everything else is assumed transient.
	if exitCode == 2 {
		return KindBadInput
	}
	return KindTransient
}

// GeneratorError is a classified generator failure. Stderr is already
// redacted and truncated; the error is safe to log and to append to the
// task error log.
type GeneratorError struct {
	Command  string
	Kind     ErrorKind
	ExitCode int
	Stderr   string
	Duration time.Duration
}

func (e *GeneratorError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s failed (%s, exit %d)", e.Command, e.Kind, e.ExitCode)
	}
	return fmt.Sprintf("%s failed (%s, exit %d): %s", e.Command, e.Kind, e.ExitCode, e.Stderr)
}
