// Package domain contains the core domain models and range-compression logic
// for the registry converter.
package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Version is a strict (major, minor, patch) version triple. It is an
// immutable value, totally ordered, and usable as a map key.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a strict "major.minor.patch" triple. All three
// components must be present, decimal, and non-negative.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, zerr.With(zerr.Wrap(ErrMalformedVersion, "failed to parse version"), "version", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, zerr.With(zerr.Wrap(ErrMalformedVersion, "failed to parse version"), "version", s)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustVersion parses a version triple or panics. Use only in tests and constants.
func MustVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the canonical "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0, or 1 comparing v against o component-wise.
func (v Version) Compare(o Version) int {
	if v.Major != o.Major {
		return cmpInt(v.Major, o.Major)
	}
	if v.Minor != o.Minor {
		return cmpInt(v.Minor, o.Minor)
	}
	return cmpInt(v.Patch, o.Patch)
}

// Less reports whether v orders strictly before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// IsZero reports whether v is the zero version 0.0.0.
func (v Version) IsZero() bool {
	return v == Version{}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SortVersions sorts the slice in ascending order in place and returns it.
func SortVersions(vs []Version) []Version {
	slices.SortFunc(vs, Version.Compare)
	return vs
}
