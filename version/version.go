package version

import "fmt"

// Set with -ldflags "-X github.com/philipparndt/prints/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Application names the generator in file metadata, e.g. "prints 1.2.0".
func Application() string {
	return "prints " + Version
}

// String returns the version with commit and build date when they are
// known.
func String() string {
	if GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildDate)
}
