// Package version exposes build-time metadata stamped into the binary via ldflags.
package version

const (
	defaultVersion   = "dev"
	defaultCommit    = "none"
	defaultBuildDate = "unknown"
)

var (
	// Version is the release of the pvg binary itself.
	Version = defaultVersion
	// Commit is the source revision the binary was built from.
	Commit = defaultCommit
	// BuildDate is the UTC timestamp when the binary was built.
	BuildDate = defaultBuildDate
)

// Summary returns a human-readable description of the build metadata.
func Summary() string {
	return Version + " (commit " + Commit + ", built " + BuildDate + ")"
}
