package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/clitools/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/clitools/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/clitools/internal/version.Date={{.Date}}
)

// String returns the one-line version banner for name.
func String(name string) string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", name, Version, Commit, Date)
}
