package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"go.trai.ch/cram/internal/core/domain"
)

func TestDeriveID_Deterministic(t *testing.T) {
	ns := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	a := domain.DeriveID(ns, "left-pad")
	b := domain.DeriveID(ns, "left-pad")
	if a != b {
		t.Errorf("expected identical identifiers, got %s and %s", a, b)
	}
}

func TestDeriveID_DistinctNames(t *testing.T) {
	ns := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	if domain.DeriveID(ns, "left-pad") == domain.DeriveID(ns, "right-pad") {
		t.Error("expected distinct names to derive distinct identifiers")
	}
}

func TestDeriveID_DistinctNamespaces(t *testing.T) {
	a := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	b := uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

	if domain.DeriveID(a, "left-pad") == domain.DeriveID(b, "left-pad") {
		t.Error("expected distinct namespaces to derive distinct identifiers")
	}
}

func TestDeriveID_TaggedLayout(t *testing.T) {
	id := domain.DeriveID(uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), "left-pad")

	// The derived value carries the name-based-SHA1 version nibble and the
	// RFC 4122 variant bits, like any other identifier of that tag.
	if id.Version() != 5 {
		t.Errorf("expected version 5, got %d", id.Version())
	}
	if id.Variant() != uuid.RFC4122 {
		t.Errorf("expected RFC 4122 variant, got %v", id.Variant())
	}
}
