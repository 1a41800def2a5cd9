package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Require is one dependency constraint carried by a release: the interval the
// dependency's version must satisfy, plus the platform tags the requirement
// is scoped to.
type Require struct {
	Constraint   Interval
	PlatformTags []string
}

// Merge combines two requirements on the same dependency: the constraints
// intersect and the platform tags union. The receiver is not modified.
func (r Require) Merge(other Require) Require {
	tags := append(slices.Clone(r.PlatformTags), other.PlatformTags...)
	slices.Sort(tags)
	return Require{
		Constraint:   r.Constraint.Intersect(other.Constraint),
		PlatformTags: slices.Compact(tags),
	}
}

// Release is the metadata of one released version of a package. It is
// constructed once by the loader and only ever deleted, never mutated, by
// the pruner.
type Release struct {
	// Label is the textual version label as found in the legacy store. The
	// pruner removes releases whose label is not in canonical form.
	Label string

	// ContentHash identifies the release payload.
	ContentHash string

	// Interpreter constrains the interpreter versions the release runs on.
	Interpreter Interval

	// Requires maps dependency package names to their constraints. Names are
	// unique; duplicate declarations are merged by the loader.
	Requires map[string]Require
}

// Package is one package of the registry with all its releases.
type Package struct {
	// SourceLocation is where the package contents are fetched from.
	SourceLocation string

	// Releases maps version triples to release metadata. Keys are unique and
	// equal the parse of their release's label.
	Releases map[Version]*Release
}

// VersionsSorted returns the package's release versions in ascending order.
func (p *Package) VersionsSorted() []Version {
	vs := make([]Version, 0, len(p.Releases))
	for v := range p.Releases {
		vs = append(vs, v)
	}
	return SortVersions(vs)
}

// Registry is the whole package graph keyed by case-sensitive package name,
// which is also the join key used by dependency names.
type Registry struct {
	packages map[string]*Package
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{packages: make(map[string]*Package)}
}

// Add registers a package under its name. Registering the same name twice is
// an error.
func (r *Registry) Add(name string, pkg *Package) error {
	if _, exists := r.packages[name]; exists {
		return zerr.With(zerr.Wrap(ErrDuplicatePackage, "failed to register package"), "package", name)
	}
	r.packages[name] = pkg
	return nil
}

// Lookup returns the package registered under name, or nil.
func (r *Registry) Lookup(name string) *Package {
	return r.packages[name]
}

// Remove deletes the package registered under name.
func (r *Registry) Remove(name string) {
	delete(r.packages, name)
}

// Len returns the number of registered packages.
func (r *Registry) Len() int {
	return len(r.packages)
}

// Names returns all package names sorted case-insensitively, with the
// case-sensitive form as tie breaker. This ordering is part of the contract
// with the emitter, which must not re-sort.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.packages))
	for name := range r.packages {
		names = append(names, name)
	}
	SortNamesFolded(names)
	return names
}

// SortNamesFolded sorts names case-insensitively in place, falling back to
// the case-sensitive comparison for names that fold equal.
func SortNamesFolded(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
