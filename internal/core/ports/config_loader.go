package ports

import "go.trai.ch/cram/internal/core/domain"

// ConfigLoader defines the interface for loading the conversion settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the settings file at the given path.
	Load(path string) (domain.Settings, error)
}
