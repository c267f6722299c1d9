// Package version reports the xint build.
package version

var (
	// Version is set via ldflags during build
	Version = "dev"
	// Commit is the short revision, set via ldflags when known
	Commit = ""
)

// Short returns the version string, with the commit when one was stamped.
func Short() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
