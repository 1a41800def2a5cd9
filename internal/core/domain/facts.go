package domain

import "github.com/google/uuid"

// Manifest is the full set of compatibility facts derived from a pruned
// registry, ordered and ready for emission.
type Manifest struct {
	// Packages is sorted case-insensitively by name.
	Packages []PackageFacts
}

// PackageFacts is everything the emitter needs for one surviving package.
type PackageFacts struct {
	Name           string
	ID             uuid.UUID
	SourceLocation string

	// Releases lists the surviving versions with their content hashes, in
	// ascending version order.
	Releases []ReleaseFact

	// Interpreter is the interpreter-compatibility statement: a single range
	// when it is identical across every release, a table otherwise.
	Interpreter AxisFacts

	// Dependencies is sorted case-insensitively by dependency name.
	Dependencies []DependencyFacts
}

// ReleaseFact pairs a surviving version with its content hash.
type ReleaseFact struct {
	Version     Version
	ContentHash string
}

// AxisFacts states one compatibility axis for a package: either one range
// uniform across all releases, or rows keyed by compressed package-version
// ranges. Exactly one of the two fields is populated.
type AxisFacts struct {
	Uniform RangeList
	Rows    []FactRow
}

// IsUniform reports whether the axis collapsed to a single package-level
// statement.
func (a AxisFacts) IsUniform() bool {
	return len(a.Rows) == 0
}

// FactRow maps a compressed package-version range to the range it is
// compatible with on the stated axis.
type FactRow struct {
	// Versions is the compressed range of the package's own versions this
	// row applies to.
	Versions RangeList

	// Range is the compatible version range on the axis (interpreter
	// versions, or the dependency's versions).
	Range RangeList

	// PlatformTags scope a dependency row; empty on the interpreter axis.
	PlatformTags []string
}

// DependencyFacts states the constraint facts for one dependency of a
// package.
type DependencyFacts struct {
	Name string

	// Facts is the per-dependency axis: uniform when every release requires
	// the dependency with the identical constraint range and tags.
	Facts AxisFacts

	// PlatformTags holds the tags of the uniform statement; row-level tags
	// live on the rows.
	PlatformTags []string
}
