// Package version extracts three-part version numbers from tool output and
// checks them against minimum or exact requirements.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a parsed major.minor.patch triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// versionRegex matches exactly three dot-separated integer groups.
// Tools that report fewer parts are treated as a parse failure, never
// zero-filled.
var versionRegex = regexp.MustCompile(`[0-9]+\.[0-9]+\.[0-9]+`)

// Extract finds and parses the first version number in s.
func Extract(s string) (Version, error) {
	match := versionRegex.FindString(s)
	if match == "" {
		return Version{}, fmt.Errorf("no version found in %q", s)
	}

	parts := strings.Split(match, ".")
	major, _ := strconv.Atoi(parts[0])
	minor, _ := strconv.Atoi(parts[1])
	patch, _ := strconv.Atoi(parts[2])

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}
