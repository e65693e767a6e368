// Package changelog describes the release notes shown to signed-in users.
package changelog

import (
	"time"

	"preparos/internal/shared/version"
)

// Release is one entry of the changelog. Body is markdown.
type Release struct {
	Version string
	Date    time.Time
	Title   string
	Body    string
}

// Source provides the releases newest first.
type Source interface {
	Releases() ([]Release, error)
}

// Latest returns the newest release version, or "" when there are none.
func Latest(releases []Release) string {
	versions := make([]string, 0, len(releases))
	for _, r := range releases {
		versions = append(versions, version.Normalize(r.Version))
	}
	if len(versions) == 0 {
		return ""
	}
	version.Sort(versions)
	return versions[0]
}
