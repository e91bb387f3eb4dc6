package version

import (
	"fmt"
	"strconv"
)

// Any marks an unconstrained minor or patch component in a Spec.
const Any = -1

// Spec is a version requirement: at least Major[.Minor[.Patch]] by default,
// or exactly that version when Exact is set. Immutable once constructed.
type Spec struct {
	Major int
	Minor int
	Patch int
	Exact bool
}

// Min builds a minimum-version requirement from up to three components.
// Omitted components are unconstrained.
func Min(parts ...int) Spec {
	return build(parts, false)
}

// Exactly builds an exact-version requirement from up to three components.
// Omitted components act as wildcards.
func Exactly(parts ...int) Spec {
	return build(parts, true)
}

func build(parts []int, exact bool) Spec {
	s := Spec{Minor: Any, Patch: Any, Exact: exact}
	switch len(parts) {
	case 3:
		s.Patch = parts[2]
		fallthrough
	case 2:
		s.Minor = parts[1]
		fallthrough
	case 1:
		s.Major = parts[0]
	}
	return s
}

// Satisfies reports whether v meets the requirement.
//
// In minimum mode the comparison is a short-circuit chain: a higher major
// always passes, a higher minor passes regardless of patch, and only at an
// equal major.minor does the patch have to be >= the required one.
// Unconstrained components sit at Any (-1), so every observed value clears
// them.
func (s Spec) Satisfies(v Version) bool {
	if s.Exact {
		majorMatch := v.Major == s.Major
		minorMatch := s.Minor == Any || v.Minor == s.Minor
		patchMatch := s.Patch == Any || v.Patch == s.Patch
		return majorMatch && minorMatch && patchMatch
	}

	majorHigher := v.Major > s.Major
	majorOK := v.Major >= s.Major
	minorHigher := majorOK && v.Minor > s.Minor
	minorOK := majorOK && v.Minor >= s.Minor
	patchOK := minorOK && v.Patch >= s.Patch

	return majorHigher || minorHigher || patchOK
}

// Expected renders only the constrained components, e.g. "14", "14.2" or
// "14.2.1".
func (s Spec) Expected() string {
	out := strconv.Itoa(s.Major)
	if s.Minor > Any {
		out = fmt.Sprintf("%d.%d", s.Major, s.Minor)
		if s.Patch > Any {
			out = fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
		}
	}
	return out
}
