// Package manifest serializes the computed compatibility facts into the
// compact YAML registry description.
package manifest

import (
	"os"
	"path/filepath"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestWriter = (*Writer)(nil)

// Writer implements ports.ManifestWriter using a YAML document. Packages are
// emitted as a sequence so the ordering guaranteed by the core survives
// serialization.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// PackageDTO is one package entry of the emitted manifest.
type PackageDTO struct {
	Name         string          `yaml:"name"`
	ID           string          `yaml:"id"`
	Source       string          `yaml:"source"`
	Releases     []ReleaseDTO    `yaml:"releases"`
	Interpreter  string          `yaml:"interpreter,omitempty"`
	Interpreters []RowDTO        `yaml:"interpreters,omitempty"`
	Dependencies []DependencyDTO `yaml:"dependencies,omitempty"`
}

// ReleaseDTO pairs a version with its content hash.
type ReleaseDTO struct {
	Version string `yaml:"version"`
	Hash    string `yaml:"hash"`
}

// DependencyDTO is one dependency statement: a single range when uniform,
// rows otherwise.
type DependencyDTO struct {
	Name  string   `yaml:"name"`
	Range string   `yaml:"range,omitempty"`
	Tags  []string `yaml:"tags,omitempty"`
	Rows  []RowDTO `yaml:"rows,omitempty"`
}

// RowDTO maps a package-version range to a compatible range.
type RowDTO struct {
	Versions string   `yaml:"versions"`
	Range    string   `yaml:"range"`
	Tags     []string `yaml:"tags,omitempty"`
}

// Document is the top-level manifest structure.
type Document struct {
	Packages []PackageDTO `yaml:"packages"`
}

// Write serializes the manifest to path, creating parent directories as
// needed.
func (w *Writer) Write(path string, m *domain.Manifest) error {
	doc := Document{Packages: make([]PackageDTO, 0, len(m.Packages))}
	for _, pkg := range m.Packages {
		doc.Packages = append(doc.Packages, packageDTO(pkg))
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create manifest directory")
	}

	//nolint:gosec // Path comes from validated settings
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}
	return nil
}

func packageDTO(pkg domain.PackageFacts) PackageDTO {
	dto := PackageDTO{
		Name:   pkg.Name,
		ID:     pkg.ID.String(),
		Source: pkg.SourceLocation,
	}

	for _, rel := range pkg.Releases {
		dto.Releases = append(dto.Releases, ReleaseDTO{
			Version: rel.Version.String(),
			Hash:    rel.ContentHash,
		})
	}

	if pkg.Interpreter.IsUniform() {
		dto.Interpreter = pkg.Interpreter.Uniform.String()
	} else {
		dto.Interpreters = rowDTOs(pkg.Interpreter.Rows)
	}

	for _, dep := range pkg.Dependencies {
		depDTO := DependencyDTO{Name: dep.Name}
		if dep.Facts.IsUniform() {
			depDTO.Range = dep.Facts.Uniform.String()
			depDTO.Tags = dep.PlatformTags
		} else {
			depDTO.Rows = rowDTOs(dep.Facts.Rows)
		}
		dto.Dependencies = append(dto.Dependencies, depDTO)
	}

	return dto
}

func rowDTOs(rows []domain.FactRow) []RowDTO {
	out := make([]RowDTO, len(rows))
	for i, row := range rows {
		out[i] = RowDTO{
			Versions: row.Versions.String(),
			Range:    row.Range.String(),
			Tags:     row.PlatformTags,
		}
	}
	return out
}
