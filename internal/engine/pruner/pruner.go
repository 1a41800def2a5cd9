// Package pruner removes registry entries whose compatibility facts cannot
// be satisfied, iterating the whole graph to a fixed point.
package pruner

import (
	"fmt"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
)

// Pruner discards releases that are malformed, run on no known interpreter,
// or require something the surviving graph cannot provide, and discards
// packages left with no releases. Removal is the designed recovery for
// inconsistent source data, so nothing here is an error.
type Pruner struct {
	logger ports.Logger
}

// New creates a Pruner.
func New(logger ports.Logger) *Pruner {
	return &Pruner{logger: logger}
}

// Report summarizes one Prune run.
type Report struct {
	// Passes is the number of full passes, including the final pass that
	// removed nothing.
	Passes int

	// ReleasesRemoved and PackagesRemoved count the discarded entries.
	ReleasesRemoved int
	PackagesRemoved int
}

// Prune mutates reg in place until a full pass removes nothing. Each pass
// reports whether it changed the registry; the loop here owns the
// convergence check. Monotone shrinking of a finite set guarantees
// termination.
//
// Afterwards every requirement of every surviving release names a surviving
// package with at least one release satisfying the constraint.
func (p *Pruner) Prune(reg *domain.Registry, interpreters []domain.Version) Report {
	var report Report
	for {
		report.Passes++
		if !p.pass(reg, interpreters, &report) {
			return report
		}
	}
}

// pass applies the removal rules once to every package and reports whether
// anything was removed. Removals take effect in place, so packages visited
// later in the same pass already see the shrunken registry; a removal that
// invalidates an earlier-visited package is picked up by the next pass.
// Prune iterates until a full pass removes nothing, so the fixed point does
// not depend on visit order.
func (p *Pruner) pass(reg *domain.Registry, interpreters []domain.Version, report *Report) bool {
	changed := false

	for _, name := range reg.Names() {
		pkg := reg.Lookup(name)

		var doomed []domain.Version
		for version, release := range pkg.Releases {
			if reason := p.rejectRelease(reg, version, release, interpreters); reason != "" {
				doomed = append(doomed, version)
				p.logger.Info(fmt.Sprintf("pruning %s %s: %s", name, version, reason))
			}
		}
		for _, version := range doomed {
			delete(pkg.Releases, version)
			report.ReleasesRemoved++
			changed = true
		}

		if len(pkg.Releases) == 0 {
			reg.Remove(name)
			report.PackagesRemoved++
			changed = true
			p.logger.Info(fmt.Sprintf("pruning package %s: no releases left", name))
		}
	}

	return changed
}

// rejectRelease returns a human-readable removal reason, or "" when the
// release stays a candidate.
func (p *Pruner) rejectRelease(reg *domain.Registry, version domain.Version, release *domain.Release, interpreters []domain.Version) string {
	// The version label must already be its own canonical representative and
	// above the zero version.
	if version.String() != release.Label || version.IsZero() {
		return "version label not canonical"
	}

	if len(release.Interpreter.Select(interpreters)) == 0 {
		return "no known interpreter satisfies the range"
	}

	for depName, req := range release.Requires {
		dep := reg.Lookup(depName)
		if dep == nil {
			return fmt.Sprintf("dependency %s not in registry", depName)
		}
		if !p.satisfiable(dep, req) {
			return fmt.Sprintf("no release of %s satisfies %s", depName, req.Constraint)
		}
	}

	return ""
}

// satisfiable reports whether any currently-candidate release of dep
// satisfies the requirement.
func (p *Pruner) satisfiable(dep *domain.Package, req domain.Require) bool {
	for version := range dep.Releases {
		if req.Constraint.Contains(version) {
			return true
		}
	}
	return false
}
