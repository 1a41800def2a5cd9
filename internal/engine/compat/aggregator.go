// Package compat derives per-package compatibility facts from a pruned
// registry: minimal version ranges on the interpreter axis and on each
// dependency axis, collapsed to a single statement when uniform across every
// release.
package compat

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"

	"go.trai.ch/cram/internal/core/domain"
)

// Aggregator computes the compatibility manifest. It assumes a stable
// name-to-package binding: a dependency name that referred to different
// underlying packages across releases is not detected.
type Aggregator struct{}

// New creates an Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Aggregate derives the manifest for every package of the pruned registry.
// Packages arrive sorted case-insensitively by name, dependencies likewise;
// the emitter relies on this ordering.
func (a *Aggregator) Aggregate(reg *domain.Registry, settings domain.Settings) (*domain.Manifest, error) {
	manifest := &domain.Manifest{}

	for _, name := range reg.Names() {
		pkg := reg.Lookup(name)

		facts, err := a.packageFacts(reg, name, pkg, settings)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to aggregate package"), "package", name)
		}
		manifest.Packages = append(manifest.Packages, facts)
	}

	return manifest, nil
}

func (a *Aggregator) packageFacts(reg *domain.Registry, name string, pkg *domain.Package, settings domain.Settings) (domain.PackageFacts, error) {
	versions := pkg.VersionsSorted()

	facts := domain.PackageFacts{
		Name:           name,
		ID:             domain.DeriveID(settings.Namespace, name),
		SourceLocation: pkg.SourceLocation,
	}
	for _, v := range versions {
		facts.Releases = append(facts.Releases, domain.ReleaseFact{
			Version:     v,
			ContentHash: pkg.Releases[v].ContentHash,
		})
	}

	interpreter, err := a.interpreterFacts(pkg, versions, settings.Interpreters)
	if err != nil {
		return domain.PackageFacts{}, err
	}
	facts.Interpreter = interpreter

	dependencies, err := a.dependencyFacts(reg, pkg, versions)
	if err != nil {
		return domain.PackageFacts{}, err
	}
	facts.Dependencies = dependencies

	return facts, nil
}

// interpreterFacts compresses each release's feasible interpreter set
// against the interpreter universe, then inverts the mapping to find ranges
// shared across releases. One distinct range covering every release becomes
// a package-level statement; anything else becomes a table keyed by
// compressed package-version ranges.
func (a *Aggregator) interpreterFacts(pkg *domain.Package, versions []domain.Version, interpreters []domain.Version) (domain.AxisFacts, error) {
	rangeOf := make(map[domain.Version]string, len(versions))
	rendered := make(map[string]domain.RangeList)

	for _, v := range versions {
		feasible := pkg.Releases[v].Interpreter.Select(interpreters)
		rl, err := domain.Compress(feasible, interpreters)
		if err != nil {
			return domain.AxisFacts{}, err
		}
		rangeOf[v] = rl.String()
		rendered[rl.String()] = rl
	}

	groups := domain.Invert(rangeOf, domain.Version.Less)
	if len(groups) == 1 {
		return domain.AxisFacts{Uniform: rendered[rangeOf[versions[0]]]}, nil
	}

	rows, err := tableRows(groups, rendered, nil, versions)
	if err != nil {
		return domain.AxisFacts{}, err
	}
	return domain.AxisFacts{Rows: rows}, nil
}

// dependencyFacts builds the constraint facts for every dependency name used
// anywhere in the package, sorted case-insensitively.
func (a *Aggregator) dependencyFacts(reg *domain.Registry, pkg *domain.Package, versions []domain.Version) ([]domain.DependencyFacts, error) {
	var depNames []string
	seen := make(map[string]bool)
	for _, v := range versions {
		for depName := range pkg.Releases[v].Requires {
			if !seen[depName] {
				seen[depName] = true
				depNames = append(depNames, depName)
			}
		}
	}
	domain.SortNamesFolded(depNames)

	var out []domain.DependencyFacts
	for _, depName := range depNames {
		facts, err := a.oneDependency(reg, pkg, versions, depName)
		if err != nil {
			return nil, err
		}
		out = append(out, facts)
	}
	return out, nil
}

// depFact is the grouping value for one release's view of a dependency: the
// rendered constraint range plus the platform tags.
type depFact struct {
	rangeKey string
	tagsKey  string
}

func (a *Aggregator) oneDependency(reg *domain.Registry, pkg *domain.Package, versions []domain.Version, depName string) (domain.DependencyFacts, error) {
	depUniverse := reg.Lookup(depName).VersionsSorted()

	factOf := make(map[domain.Version]depFact)
	rendered := make(map[string]domain.RangeList)
	tagsOf := make(map[string][]string)

	for _, v := range versions {
		req, ok := pkg.Releases[v].Requires[depName]
		if !ok {
			continue
		}
		rl, err := domain.Compress(req.Constraint.Select(depUniverse), depUniverse)
		if err != nil {
			return domain.DependencyFacts{}, err
		}
		fact := depFact{rangeKey: rl.String(), tagsKey: strings.Join(req.PlatformTags, " ")}
		factOf[v] = fact
		rendered[fact.rangeKey] = rl
		tagsOf[fact.tagsKey] = req.PlatformTags
	}

	groups := domain.Invert(factOf, domain.Version.Less)

	// Uniform only when every release carries the identical fact; a release
	// that does not require the dependency at all forces table form.
	if len(groups) == 1 && len(factOf) == len(versions) {
		fact := factOf[versions[0]]
		return domain.DependencyFacts{
			Name:         depName,
			Facts:        domain.AxisFacts{Uniform: rendered[fact.rangeKey]},
			PlatformTags: tagsOf[fact.tagsKey],
		}, nil
	}

	rowGroups := make(map[string][]domain.Version, len(groups))
	rowRanges := make(map[string]domain.RangeList, len(groups))
	rowTags := make(map[string][]string, len(groups))
	for fact, members := range groups {
		key := fact.rangeKey + "\x00" + fact.tagsKey
		rowGroups[key] = members
		rowRanges[key] = rendered[fact.rangeKey]
		rowTags[key] = tagsOf[fact.tagsKey]
	}

	rows, err := tableRows(rowGroups, rowRanges, rowTags, versions)
	if err != nil {
		return domain.DependencyFacts{}, err
	}
	return domain.DependencyFacts{Name: depName, Facts: domain.AxisFacts{Rows: rows}}, nil
}

// tableRows compresses each group of release versions against the package's
// own version universe and orders the rows by their first version.
func tableRows[K comparable](groups map[K][]domain.Version, rendered map[K]domain.RangeList, tags map[K][]string, versions []domain.Version) ([]domain.FactRow, error) {
	type keyedRow struct {
		first domain.Version
		row   domain.FactRow
	}

	var keyed []keyedRow
	for key, members := range groups {
		versRange, err := domain.Compress(members, versions)
		if err != nil {
			return nil, err
		}
		row := domain.FactRow{Versions: versRange, Range: rendered[key]}
		if tags != nil {
			row.PlatformTags = tags[key]
		}
		keyed = append(keyed, keyedRow{first: members[0], row: row})
	}

	slices.SortFunc(keyed, func(a, b keyedRow) int {
		return a.first.Compare(b.first)
	})

	rows := make([]domain.FactRow, len(keyed))
	for i, k := range keyed {
		rows[i] = k.row
	}
	return rows, nil
}
