package domain

import "github.com/google/uuid"

// DeriveID derives the stable identifier for a package name under the given
// namespace. The construction is the RFC 4122 name-based form: the namespace
// bytes concatenated with the UTF-8 name are hashed with SHA-1, the first 128
// bits are kept, and the version and variant bits are overwritten, so the
// result is structurally indistinguishable from a random identifier.
//
// The derivation is deterministic and has no error conditions; the same
// (namespace, name) pair always yields the same identifier.
func DeriveID(namespace uuid.UUID, name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(name))
}
