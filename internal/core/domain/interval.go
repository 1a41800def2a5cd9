package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// BoundOp is the comparison a single interval bound applies to a version.
type BoundOp int

const (
	// BoundMatch admits versions inside the prefix (bare "1.2" constraints).
	BoundMatch BoundOp = iota
	// BoundAtLeast admits versions at or above the prefix (">=").
	BoundAtLeast
	// BoundAtMost admits versions at or below the prefix ("<=").
	BoundAtMost
	// BoundAbove admits versions strictly above the whole prefix (">").
	BoundAbove
	// BoundBelow admits versions strictly below the whole prefix ("<").
	BoundBelow
)

// Bound is a single constraint on a version, expressed against a prefix.
type Bound struct {
	Op     BoundOp
	Prefix Prefix
}

// Admits reports whether v satisfies the bound.
func (b Bound) Admits(v Version) bool {
	switch b.Op {
	case BoundMatch:
		return b.Prefix.Matches(v)
	case BoundAtLeast:
		return b.Prefix.AtMost(v)
	case BoundAtMost:
		return b.Prefix.AtLeast(v)
	case BoundAbove:
		return !b.Prefix.AtLeast(v)
	case BoundBelow:
		return !b.Prefix.AtMost(v)
	}
	return false
}

func (b Bound) String() string {
	switch b.Op {
	case BoundAtLeast:
		return ">=" + b.Prefix.String()
	case BoundAtMost:
		return "<=" + b.Prefix.String()
	case BoundAbove:
		return ">" + b.Prefix.String()
	case BoundBelow:
		return "<" + b.Prefix.String()
	default:
		return b.Prefix.String()
	}
}

// Interval is a conjunction of bounds. The empty interval admits every
// version. Intervals are immutable once constructed; Intersect returns a new
// value.
type Interval struct {
	bounds []Bound
}

// NewInterval builds an interval from the given bounds.
func NewInterval(bounds ...Bound) Interval {
	return Interval{bounds: bounds}
}

// ParseInterval parses a whitespace-separated conjunction of constraint
// tokens: ">=1.2.0", "<=2", ">1.1", "<3.0.0", "==1.4", or a bare prefix
// "1.4" which constrains to versions inside that prefix.
func ParseInterval(expr string) (Interval, error) {
	fields := strings.Fields(expr)
	bounds := make([]Bound, 0, len(fields))

	for _, tok := range fields {
		op := BoundMatch
		rest := tok
		switch {
		case strings.HasPrefix(tok, ">="):
			op, rest = BoundAtLeast, tok[2:]
		case strings.HasPrefix(tok, "<="):
			op, rest = BoundAtMost, tok[2:]
		case strings.HasPrefix(tok, "=="):
			op, rest = BoundMatch, tok[2:]
		case strings.HasPrefix(tok, ">"):
			op, rest = BoundAbove, tok[1:]
		case strings.HasPrefix(tok, "<"):
			op, rest = BoundBelow, tok[1:]
		}

		p, err := ParsePrefix(rest)
		if err != nil {
			return Interval{}, zerr.With(zerr.Wrap(err, "invalid constraint token"), "token", tok)
		}
		bounds = append(bounds, Bound{Op: op, Prefix: p})
	}

	return Interval{bounds: bounds}, nil
}

// Contains reports whether v satisfies every bound of the interval.
func (iv Interval) Contains(v Version) bool {
	for _, b := range iv.bounds {
		if !b.Admits(v) {
			return false
		}
	}
	return true
}

// Intersect returns the interval admitting exactly the versions admitted by
// both iv and other.
func (iv Interval) Intersect(other Interval) Interval {
	merged := make([]Bound, 0, len(iv.bounds)+len(other.bounds))
	merged = append(merged, iv.bounds...)
	merged = append(merged, other.bounds...)
	return Interval{bounds: merged}
}

// Select returns the members of universe admitted by the interval, in the
// universe's order.
func (iv Interval) Select(universe []Version) []Version {
	var out []Version
	for _, v := range universe {
		if iv.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// String renders the interval as its space-joined bound tokens. The
// unbounded interval renders as "*".
func (iv Interval) String() string {
	if len(iv.bounds) == 0 {
		return "*"
	}
	parts := make([]string, len(iv.bounds))
	for i, b := range iv.bounds {
		parts[i] = b.String()
	}
	return strings.Join(parts, " ")
}
