package domain

import "github.com/google/uuid"

// Settings is the validated conversion configuration.
type Settings struct {
	// Root is the directory of the legacy file-per-version store.
	Root string

	// Output is the path the compact manifest is written to.
	Output string

	// Namespace is the identifier-derivation namespace for this registry.
	Namespace uuid.UUID

	// Interpreters is the finite universe of known interpreter versions that
	// interpreter ranges are compressed against.
	Interpreters []Version
}
