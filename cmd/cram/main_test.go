package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	store := filepath.Join(tmpDir, "store")
	output := filepath.Join(tmpDir, "out", "manifest.yaml")

	writeFile(t, filepath.Join(store, "libx", "source"), "https://example.com/libx.git\n")
	writeFile(t, filepath.Join(store, "libx", "1.0.0", "sha"), "cafe\n")
	writeFile(t, filepath.Join(store, "libx", "1.0.0", "interpreter"), ">=3.0\n")

	configPath := filepath.Join(tmpDir, "cram.yaml")
	writeFile(t, configPath, `root: `+store+`
output: `+output+`
namespace: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
interpreters:
  - 3.1.0
`)

	os.Args = []string{"cram", "convert", "-c", configPath}

	exitCode := run()
	assert.Equal(t, 0, exitCode)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "libx")
	assert.Contains(t, string(data), "cafe")
}

func TestRun_MissingConfig(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	os.Args = []string{"cram", "convert", "-c", filepath.Join(t.TempDir(), "absent.yaml")}

	exitCode := run()
	assert.Equal(t, 1, exitCode)
}
