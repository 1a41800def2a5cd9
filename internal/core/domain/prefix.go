package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Prefix is a partial version specifier of arity 0 to 3, used as an inclusive
// range boundary. An arity-k prefix compares only the first k components of a
// version and therefore bounds at that granularity: the arity-2 prefix "1.4"
// is at-most every 1.4.x and at-least every 1.4.x. Arity 0 bounds nothing and
// compares true against every version.
//
// Prefixes of different arity are never compared against each other; the only
// comparisons defined are Prefix against Version.
type Prefix struct {
	parts [3]int
	arity int
}

// PrefixAll returns the arity-0 prefix that matches every version.
func PrefixAll() Prefix {
	return Prefix{}
}

// PrefixMajor returns the arity-1 prefix for the given major version.
func PrefixMajor(major int) Prefix {
	return Prefix{parts: [3]int{major, 0, 0}, arity: 1}
}

// PrefixMinor returns the arity-2 "major.minor" prefix of v.
func PrefixMinor(v Version) Prefix {
	return Prefix{parts: [3]int{v.Major, v.Minor, 0}, arity: 2}
}

// PrefixExact returns the arity-3 prefix matching exactly v.
func PrefixExact(v Version) Prefix {
	return Prefix{parts: [3]int{v.Major, v.Minor, v.Patch}, arity: 3}
}

// ParsePrefix parses a dotted prefix of one to three components, e.g. "2",
// "2.1", or "2.1.7".
func ParsePrefix(s string) (Prefix, error) {
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Prefix{}, zerr.With(zerr.Wrap(ErrMalformedPrefix, "failed to parse prefix"), "prefix", s)
	}

	var p Prefix
	for i, raw := range parts {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Prefix{}, zerr.With(zerr.Wrap(ErrMalformedPrefix, "failed to parse prefix"), "prefix", s)
		}
		p.parts[i] = n
	}
	p.arity = len(parts)
	return p, nil
}

// Arity returns the number of significant components, 0 to 3.
func (p Prefix) Arity() int {
	return p.arity
}

// String renders the significant components joined by dots. The arity-0
// prefix renders as "*".
func (p Prefix) String() string {
	if p.arity == 0 {
		return "*"
	}
	parts := make([]string, p.arity)
	for i := range p.arity {
		parts[i] = fmt.Sprintf("%d", p.parts[i])
	}
	return strings.Join(parts, ".")
}

// AtMost reports whether p, read as an inclusive lower boundary, admits v:
// the first Arity() components of p compare lexicographically at or below
// the corresponding components of v.
func (p Prefix) AtMost(v Version) bool {
	return p.compare(v) <= 0
}

// AtLeast reports whether p, read as an inclusive upper boundary, admits v.
func (p Prefix) AtLeast(v Version) bool {
	return p.compare(v) >= 0
}

// Matches reports whether v falls inside the prefix, i.e. p is both an
// admitting lower and upper boundary for v.
func (p Prefix) Matches(v Version) bool {
	return p.compare(v) == 0
}

// compare compares the significant components of p against v
// lexicographically. Unspecified components are ignored, which makes a
// shorter prefix compare equal to every version it covers.
func (p Prefix) compare(v Version) int {
	components := [3]int{v.Major, v.Minor, v.Patch}
	for i := range p.arity {
		if p.parts[i] != components[i] {
			return cmpInt(p.parts[i], components[i])
		}
	}
	return 0
}
