package ports

import "go.trai.ch/cram/internal/core/domain"

// ManifestWriter defines the interface for emitting the computed
// compatibility facts. The manifest arrives fully ordered; implementations
// must not re-sort it.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_writer.go -destination=mocks/mock_manifest_writer.go -package=mocks
type ManifestWriter interface {
	// Write serializes the manifest to the given path.
	Write(path string, m *domain.Manifest) error
}
