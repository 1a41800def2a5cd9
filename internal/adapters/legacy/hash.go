package legacy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// metadataFiles are the store's own files inside a version directory; they
// never contribute to the derived content hash.
var metadataFiles = map[string]bool{
	shaFile:         true,
	interpreterFile: true,
	requiresFile:    true,
}

// derivePayloadHash hashes the payload files of a version directory in
// sorted order, mixing in each file name so renames change the digest.
func derivePayloadHash(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read version directory")
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && !metadataFiles[entry.Name()] {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	hasher := xxhash.New()
	for _, name := range names {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0})

		if err := hashFileInto(hasher, filepath.Join(dir, name)); err != nil {
			return "", err
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func hashFileInto(hasher *xxhash.Digest, path string) error {
	f, err := os.Open(path) //nolint:gosec // Path is inside the store root
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open payload file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(hasher, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash payload file"), "path", path)
	}
	return nil
}
