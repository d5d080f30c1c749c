// Package version carries build information stamped in via ldflags.
package version

// Build-time variables set by ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String renders the version in one line for --version output.
func String() string {
	return Version + " (commit: " + GitCommit + ", built: " + BuildDate + ")"
}
