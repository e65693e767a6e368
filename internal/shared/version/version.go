// Package version compares changelog release versions.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "2.1" -> "v2.1", "v2.1.0" -> "v2.1.0"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// HasUnseen reports whether latest is newer than the version a user last
// acknowledged. An empty or unparseable acknowledged version counts as
// never seen.
func HasUnseen(acknowledged, latest string) bool {
	latest = Normalize(latest)
	if latest == "" || !semver.IsValid(latest) {
		return false
	}
	acknowledged = Normalize(acknowledged)
	if !semver.IsValid(acknowledged) {
		return true
	}
	return semver.Compare(acknowledged, latest) < 0
}

// Sort orders versions newest first. Invalid versions sort last.
func Sort(versions []string) {
	semver.Sort(versions)
	for i, j := 0, len(versions)-1; i < j; i, j = i+1, j-1 {
		versions[i], versions[j] = versions[j], versions[i]
	}
}
