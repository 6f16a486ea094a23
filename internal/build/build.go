// Package build provides build-time information for the CLI application.
// Version is read from VERSION file or set via ldflags during build.
package build

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Set via ldflags:
// -X github.com/tacogips/skadd/internal/build.version=x.y.z
// -X github.com/tacogips/skadd/internal/build.commit=<sha>
// -X github.com/tacogips/skadd/internal/build.date=<rfc3339>
var (
	version string
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the application version.
// Priority: ldflags > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// Commit returns the source revision the binary was built from.
func Commit() string {
	return commit
}

// Date returns the build timestamp.
func Date() string {
	return date
}
