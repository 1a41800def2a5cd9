package ports

import (
	"context"

	"go.trai.ch/cram/internal/core/domain"
)

// RegistryLoader defines the interface for reading the legacy
// file-per-version store into an in-memory registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry_loader.go -destination=mocks/mock_registry_loader.go -package=mocks
type RegistryLoader interface {
	// Load reads every package under root. The returned registry has unique,
	// well-formed version keys per package.
	Load(ctx context.Context, root string) (*domain.Registry, error)
}
