// Package version reports which build of the worker is running, for the
// startup log line and the ops API.
package version

import "runtime/debug"

// AppName prefixes version strings in logs and user agents.
const AppName = "reelpipe"

// commit can be injected at build time with
// -ldflags "-X .../pkg/version.commit=<sha>" for container builds that
// carry no VCS metadata.
var commit string

// GitCommit is the short revision this binary was built from, or "dev"
// when nothing is known (go test, builds outside a checkout).
var GitCommit = resolve()

func resolve() string {
	rev := commit
	if rev == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					rev = s.Value
					break
				}
			}
		}
	}
	if rev == "" {
		return "dev"
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	return rev
}

// Full returns the "reelpipe/<commit>" form used in logs.
func Full() string {
	return AppName + "/" + GitCommit
}
