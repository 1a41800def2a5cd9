package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// PrefixRange is an inclusive span between two prefixes. A range whose low
// and high prefix are equal collapses to a single value when rendered.
type PrefixRange struct {
	Lo Prefix
	Hi Prefix
}

// Contains reports whether v lies inside the range: the low prefix admits it
// from below and the high prefix admits it from above.
func (r PrefixRange) Contains(v Version) bool {
	return r.Lo.AtMost(v) && r.Hi.AtLeast(v)
}

// String renders "lo - hi", or just "lo" when both boundaries are equal.
func (r PrefixRange) String() string {
	if r.Lo == r.Hi {
		return r.Lo.String()
	}
	return r.Lo.String() + " - " + r.Hi.String()
}

// RangeList is an ordered list of prefix ranges produced by Compress.
type RangeList []PrefixRange

// Contains reports whether any range in the list admits v.
func (rl RangeList) Contains(v Version) bool {
	for _, r := range rl {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// String renders the comma-joined ranges, used both for output and as a
// grouping key when detecting uniform compatibility facts.
func (rl RangeList) String() string {
	if len(rl) == 0 {
		return ""
	}
	s := rl[0].String()
	for _, r := range rl[1:] {
		s += ", " + r.String()
	}
	return s
}

// Compress turns the include subset of universe into the smallest ordered
// list of inclusive prefix ranges that admits every included version and no
// excluded one.
//
// Each included version is first tried at major.minor granularity; if that
// coarse prefix would also cover an excluded version, the exact
// major.minor.patch prefix is used instead. Consecutive prefixes are merged
// greedily into the open range unless the widened range would admit an
// excluded version, in which case a new range is started. Merging never
// re-opens a previously closed range.
//
// Include must be a subset of universe; a violation is a caller bug and is
// reported as ErrNotInUniverse.
func Compress(include, universe []Version) (RangeList, error) {
	if len(include) == 0 {
		return nil, nil
	}

	sorted := SortVersions(slices.Clone(universe))
	members := make(map[Version]bool, len(sorted))
	for _, v := range sorted {
		members[v] = true
	}

	included := make(map[Version]bool, len(include))
	for _, v := range include {
		if !members[v] {
			return nil, zerr.With(zerr.Wrap(ErrNotInUniverse, "cannot compress include set"), "version", v.String())
		}
		included[v] = true
	}

	var excluded []Version
	for _, v := range sorted {
		if !included[v] {
			excluded = append(excluded, v)
		}
	}

	wanted := SortVersions(slices.Clone(include))
	wanted = slices.Compact(wanted)

	// Nothing is excluded: one coarse range from the first to the last
	// included version covers the whole universe.
	if len(excluded) == 0 {
		return RangeList{{
			Lo: PrefixMinor(wanted[0]),
			Hi: PrefixMinor(wanted[len(wanted)-1]),
		}}, nil
	}

	admitsExcluded := func(lo, hi Prefix) bool {
		for _, e := range excluded {
			if lo.AtMost(e) && hi.AtLeast(e) {
				return true
			}
		}
		return false
	}

	var (
		ranges RangeList
		open   bool
		cur    PrefixRange
	)
	for _, v := range wanted {
		pref := PrefixMinor(v)
		if admitsExcluded(pref, pref) {
			pref = PrefixExact(v)
		}

		if open && !admitsExcluded(cur.Lo, pref) {
			cur.Hi = pref
			continue
		}
		if open {
			ranges = append(ranges, cur)
		}
		cur = PrefixRange{Lo: pref, Hi: pref}
		open = true
	}
	ranges = append(ranges, cur)

	return ranges, nil
}

// Expand returns the members of universe admitted by the range list, in
// ascending order. Compress followed by Expand reproduces the original
// include set exactly.
func Expand(ranges RangeList, universe []Version) []Version {
	sorted := SortVersions(slices.Clone(universe))
	var out []Version
	for _, v := range sorted {
		if ranges.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}
