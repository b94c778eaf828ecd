package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// VersionAtLeast reports whether installed satisfies the target version.
// Both are plain dotted versions ("3.4.2"); if either fails to parse as
// semver the comparison falls back to string equality.
func VersionAtLeast(installed, target string) bool {
	current := normalizeVersion(installed)
	wanted := normalizeVersion(target)

	if semver.IsValid(current) && semver.IsValid(wanted) {
		return semver.Compare(current, wanted) >= 0
	}

	return installed == target
}

// normalizeVersion ensures the version has a 'v' prefix for semver compatibility.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
