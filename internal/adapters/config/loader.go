// Package config provides the settings loader for cram.
package config

import (
	"os"

	"github.com/google/uuid"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// File represents the structure of the cram.yaml settings file.
type File struct {
	Root         string   `yaml:"root"`
	Output       string   `yaml:"output"`
	Namespace    string   `yaml:"namespace"`
	Interpreters []string `yaml:"interpreters"`
}

// Load reads and validates the settings file at the given path.
func (l *Loader) Load(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to read settings file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to parse settings file")
	}

	if file.Root == "" {
		return domain.Settings{}, zerr.New("settings: root is required")
	}
	if file.Output == "" {
		return domain.Settings{}, zerr.New("settings: output is required")
	}
	if len(file.Interpreters) == 0 {
		return domain.Settings{}, zerr.New("settings: at least one interpreter version is required")
	}

	namespace, err := uuid.Parse(file.Namespace)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "settings: invalid namespace")
	}

	interpreters := make([]domain.Version, len(file.Interpreters))
	for i, raw := range file.Interpreters {
		v, err := domain.ParseVersion(raw)
		if err != nil {
			return domain.Settings{}, zerr.Wrap(err, "settings: invalid interpreter version")
		}
		interpreters[i] = v
	}
	domain.SortVersions(interpreters)

	return domain.Settings{
		Root:         file.Root,
		Output:       file.Output,
		Namespace:    namespace,
		Interpreters: interpreters,
	}, nil
}
