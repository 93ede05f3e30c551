// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" ./cmd/hnotes
//
// Version also feeds the artifact cache key, so a new release never serves
// documents rendered by an older one.
package buildinfo

import "fmt"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information as key: value lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}
