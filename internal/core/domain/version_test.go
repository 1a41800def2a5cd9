package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/cram/internal/core/domain"
)

func TestParseVersion(t *testing.T) {
	v, err := domain.ParseVersion("1.24.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Major != 1 || v.Minor != 24 || v.Patch != 3 {
		t.Errorf("expected 1.24.3, got %s", v)
	}
}

func TestParseVersion_Rejects(t *testing.T) {
	for _, s := range []string{"", "1", "1.2", "1.2.3.4", "1.x.3", "-1.2.3", "a.b.c"} {
		if _, err := domain.ParseVersion(s); err == nil {
			t.Errorf("expected error for %q, got nil", s)
		} else if !errors.Is(err, domain.ErrMalformedVersion) {
			t.Errorf("expected ErrMalformedVersion for %q, got %v", s, err)
		}
	}
}

func TestParseVersion_NonCanonicalFormsParse(t *testing.T) {
	// "1.02.3" parses to the same triple as "1.2.3"; telling the two labels
	// apart is the pruner's job, not the parser's.
	v, err := domain.ParseVersion("1.02.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "1.2.3" {
		t.Errorf("expected canonical 1.2.3, got %s", v)
	}
}

func TestVersion_Compare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"1.1.0", "1.0.9", 1},
		{"2.0.0", "1.99.99", 1},
		{"0.0.1", "0.1.0", -1},
	}
	for _, tc := range cases {
		a, b := domain.MustVersion(tc.a), domain.MustVersion(tc.b)
		if got := a.Compare(b); got != tc.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSortVersions(t *testing.T) {
	vs := []domain.Version{
		domain.MustVersion("1.1.0"),
		domain.MustVersion("0.9.9"),
		domain.MustVersion("1.0.10"),
		domain.MustVersion("1.0.2"),
	}
	domain.SortVersions(vs)

	want := []string{"0.9.9", "1.0.2", "1.0.10", "1.1.0"}
	for i, w := range want {
		if vs[i].String() != w {
			t.Fatalf("expected %v at %d, got %v", w, i, vs[i])
		}
	}
}
