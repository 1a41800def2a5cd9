// Package legacy reads the file-per-version metadata store into an in-memory
// registry.
//
// The expected layout under the store root is one directory per package,
// containing a "source" file with the package's source location and one
// directory per released version:
//
//	<root>/<package>/source
//	<root>/<package>/<version>/sha
//	<root>/<package>/<version>/interpreter
//	<root>/<package>/<version>/requires
//
// "sha" holds the recorded content hash; when it is absent (trees that
// predate recorded digests) the hash is derived from the version directory's
// payload files. "interpreter" holds a constraint expression and "requires"
// the line-oriented dependency declarations; both are optional.
package legacy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	sourceFile      = "source"
	shaFile         = "sha"
	interpreterFile = "interpreter"
	requiresFile    = "requires"
)

var _ ports.RegistryLoader = (*Loader)(nil)

// Loader implements ports.RegistryLoader for the legacy store layout.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads every package directory under root. Packages load concurrently;
// the registry is assembled once all of them finished.
func (l *Loader) Load(ctx context.Context, root string) (*domain.Registry, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read store root"), "root", root)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	packages := make([]*domain.Package, len(names))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		g.Go(func() error {
			pkg, err := l.loadPackage(filepath.Join(root, name))
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to load package"), "package", name)
			}
			packages[i] = pkg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	registry := domain.NewRegistry()
	for i, name := range names {
		if err := registry.Add(name, packages[i]); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func (l *Loader) loadPackage(dir string) (*domain.Package, error) {
	source, err := os.ReadFile(filepath.Join(dir, sourceFile))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read source location")
	}

	pkg := &domain.Package{
		SourceLocation: strings.TrimSpace(string(source)),
		Releases:       make(map[domain.Version]*domain.Release),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read package directory")
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		label := entry.Name()

		version, err := domain.ParseVersion(label)
		if err != nil {
			// Not even a triple; there is no key this entry could live
			// under, so it cannot reach the pruner.
			l.logger.Info(fmt.Sprintf("skipping %s: label %q is not a version triple", dir, label))
			continue
		}

		if _, exists := pkg.Releases[version]; exists {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrDuplicateRelease, "release label aliases an already-loaded version"), "label", label), "version", version.String())
		}

		release, err := l.loadRelease(filepath.Join(dir, label), label)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to load release"), "label", label)
		}
		pkg.Releases[version] = release
	}

	return pkg, nil
}

func (l *Loader) loadRelease(dir, label string) (*domain.Release, error) {
	release := &domain.Release{
		Label:       label,
		Interpreter: domain.NewInterval(),
		Requires:    make(map[string]domain.Require),
	}

	hash, err := l.contentHash(dir)
	if err != nil {
		return nil, err
	}
	release.ContentHash = hash

	if data, err := os.ReadFile(filepath.Join(dir, interpreterFile)); err == nil {
		interval, err := domain.ParseInterval(string(data))
		if err != nil {
			return nil, zerr.Wrap(err, "invalid interpreter constraint")
		}
		release.Interpreter = interval
	} else if !os.IsNotExist(err) {
		return nil, zerr.Wrap(err, "failed to read interpreter constraint")
	}

	if data, err := os.ReadFile(filepath.Join(dir, requiresFile)); err == nil {
		requires, err := ParseRequires(string(data))
		if err != nil {
			return nil, err
		}
		release.Requires = requires
	} else if !os.IsNotExist(err) {
		return nil, zerr.Wrap(err, "failed to read requires file")
	}

	return release, nil
}

// contentHash returns the recorded hash from the sha file, or derives one
// from the payload files when no hash was recorded.
func (l *Loader) contentHash(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, shaFile))
	if err == nil {
		return strings.TrimSpace(string(data)), nil
	}
	if !os.IsNotExist(err) {
		return "", zerr.Wrap(err, "failed to read content hash")
	}
	return derivePayloadHash(dir)
}
