package legacy

import (
	"slices"
	"strings"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParseRequires parses the line-oriented dependency declaration format.
//
// Each non-empty line declares one requirement:
//
//	name [constraint-token...] [';' tag...]
//
// Constraint tokens are ">=x", "<=x", ">x", "<x", "==x", or a bare prefix
// like "1.4"; multiple tokens on one line intersect. Tags after the
// semicolon are opaque platform symbols. "#" starts a comment. Two lines
// naming the same dependency merge: constraints intersect, tags union.
func ParseRequires(data string) (map[string]domain.Require, error) {
	requires := make(map[string]domain.Require)

	for lineNo, raw := range strings.Split(data, "\n") {
		line := raw
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		req, name, err := parseRequireLine(line)
		if err != nil {
			return nil, zerr.With(err, "line", lineNo+1)
		}

		if existing, ok := requires[name]; ok {
			req = existing.Merge(req)
		}
		requires[name] = req
	}

	return requires, nil
}

func parseRequireLine(line string) (domain.Require, string, error) {
	constraintPart := line
	var tags []string
	if i := strings.IndexByte(line, ';'); i >= 0 {
		constraintPart = line[:i]
		tags = strings.Fields(line[i+1:])
		slices.Sort(tags)
		tags = slices.Compact(tags)
	}

	fields := strings.Fields(constraintPart)
	if len(fields) == 0 {
		return domain.Require{}, "", zerr.With(zerr.Wrap(domain.ErrMalformedConstraint, "requirement line names no dependency"), "text", line)
	}

	name := fields[0]
	interval, err := domain.ParseInterval(strings.Join(fields[1:], " "))
	if err != nil {
		return domain.Require{}, "", zerr.With(zerr.Wrap(err, "invalid requirement"), "dependency", name)
	}

	return domain.Require{Constraint: interval, PlatformTags: tags}, name, nil
}
