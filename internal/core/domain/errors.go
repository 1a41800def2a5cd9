package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedVersion is returned when a version string is not a strict
	// non-negative "major.minor.patch" triple.
	ErrMalformedVersion = zerr.New("malformed version")

	// ErrMalformedPrefix is returned when a version prefix string has more
	// than three components or a non-numeric component.
	ErrMalformedPrefix = zerr.New("malformed version prefix")

	// ErrMalformedConstraint is returned when a constraint expression cannot
	// be parsed.
	ErrMalformedConstraint = zerr.New("malformed constraint")

	// ErrNotInUniverse is returned when the range compressor is asked to
	// include a version that is not part of the universe. This is a caller
	// contract violation, never repaired.
	ErrNotInUniverse = zerr.New("include set is not a subset of the universe")

	// ErrNotAPartition is returned when a grouped mapping assigns the same
	// key two different values. The grouping contract requires a true
	// partition; this signals an internal consistency bug in the caller.
	ErrNotAPartition = zerr.New("grouped mapping is not a partition")

	// ErrDuplicatePackage is returned when two packages are registered under
	// the same name.
	ErrDuplicatePackage = zerr.New("package already registered")

	// ErrDuplicateRelease is returned when two release labels of one package
	// normalize to the same version triple.
	ErrDuplicateRelease = zerr.New("release already registered")
)
