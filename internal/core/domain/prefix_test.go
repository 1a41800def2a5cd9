package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/cram/internal/core/domain"
)

func TestPrefix_ArityZeroBoundsNothing(t *testing.T) {
	all := domain.PrefixAll()
	for _, s := range []string{"0.0.0", "1.2.3", "99.0.1"} {
		v := domain.MustVersion(s)
		if !all.AtMost(v) || !all.AtLeast(v) || !all.Matches(v) {
			t.Errorf("arity-0 prefix must compare true against %s", s)
		}
	}
}

func TestPrefix_MajorGranularity(t *testing.T) {
	p := domain.PrefixMajor(2)

	// At-most admits every version with major >= 2, at-least every version
	// with major <= 2; inside major 2 both hold.
	if !p.AtMost(domain.MustVersion("2.0.0")) || !p.AtMost(domain.MustVersion("2.9.9")) || !p.AtMost(domain.MustVersion("3.0.0")) {
		t.Error("major prefix must be at-most versions at or above its major")
	}
	if !p.AtLeast(domain.MustVersion("2.9.9")) || !p.AtLeast(domain.MustVersion("1.99.0")) {
		t.Error("major prefix must be at-least versions at or below its major")
	}
	if p.AtMost(domain.MustVersion("1.9.9")) {
		t.Error("major prefix 2 must not be at-most a 1.x version")
	}
	if p.AtLeast(domain.MustVersion("3.0.0")) {
		t.Error("major prefix 2 must not be at-least a 3.x version")
	}
}

func TestPrefix_MinorGranularity(t *testing.T) {
	p := domain.PrefixMinor(domain.MustVersion("1.4.7"))

	if p.String() != "1.4" {
		t.Errorf("expected minor prefix to render as 1.4, got %s", p)
	}
	for _, s := range []string{"1.4.0", "1.4.7", "1.4.99"} {
		if !p.Matches(domain.MustVersion(s)) {
			t.Errorf("1.4 must match %s", s)
		}
	}
	for _, s := range []string{"1.3.9", "1.5.0", "2.4.0"} {
		if p.Matches(domain.MustVersion(s)) {
			t.Errorf("1.4 must not match %s", s)
		}
	}
}

func TestPrefix_Exact(t *testing.T) {
	v := domain.MustVersion("1.2.3")
	p := domain.PrefixExact(v)

	if !p.Matches(v) {
		t.Error("exact prefix must match its own version")
	}
	if p.Matches(domain.MustVersion("1.2.4")) {
		t.Error("exact prefix must not match a different patch")
	}
	if !p.AtMost(domain.MustVersion("1.2.4")) || !p.AtLeast(domain.MustVersion("1.2.2")) {
		t.Error("exact prefix must still order against neighbors")
	}
}

func TestParsePrefix(t *testing.T) {
	for s, arity := range map[string]int{"3": 1, "3.1": 2, "3.1.4": 3} {
		p, err := domain.ParsePrefix(s)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", s, err)
		}
		if p.Arity() != arity {
			t.Errorf("expected arity %d for %q, got %d", arity, s, p.Arity())
		}
		if p.String() != s {
			t.Errorf("expected %q to round-trip, got %q", s, p)
		}
	}

	for _, s := range []string{"1.2.3.4", "x", "1..2", "-1"} {
		if _, err := domain.ParsePrefix(s); err == nil {
			t.Errorf("expected error for %q, got nil", s)
		} else if !errors.Is(err, domain.ErrMalformedPrefix) {
			t.Errorf("expected ErrMalformedPrefix for %q, got %v", s, err)
		}
	}
}
