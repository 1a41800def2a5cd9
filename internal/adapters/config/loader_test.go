package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cram/internal/adapters/config"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cram.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeSettings(t, `
root: ./store
output: ./out/manifest.yaml
namespace: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
interpreters:
  - 3.2.0
  - 3.0.0
  - 3.1.0
`)

	settings, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./store", settings.Root)
	assert.Equal(t, "./out/manifest.yaml", settings.Output)
	assert.Equal(t, uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), settings.Namespace)

	// Interpreter versions come out sorted regardless of file order.
	require.Len(t, settings.Interpreters, 3)
	assert.Equal(t, "3.0.0", settings.Interpreters[0].String())
	assert.Equal(t, "3.2.0", settings.Interpreters[2].String())
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings file")
}

func TestLoader_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "malformed yaml",
			content:     "root: [",
			errContains: "failed to parse settings file",
		},
		{
			name:        "missing root",
			content:     "output: o\nnamespace: 6ba7b810-9dad-11d1-80b4-00c04fd430c8\ninterpreters: [3.0.0]\n",
			errContains: "root is required",
		},
		{
			name:        "missing output",
			content:     "root: r\nnamespace: 6ba7b810-9dad-11d1-80b4-00c04fd430c8\ninterpreters: [3.0.0]\n",
			errContains: "output is required",
		},
		{
			name:        "no interpreters",
			content:     "root: r\noutput: o\nnamespace: 6ba7b810-9dad-11d1-80b4-00c04fd430c8\n",
			errContains: "at least one interpreter",
		},
		{
			name:        "bad namespace",
			content:     "root: r\noutput: o\nnamespace: not-a-uuid\ninterpreters: [3.0.0]\n",
			errContains: "invalid namespace",
		},
		{
			name:        "bad interpreter version",
			content:     "root: r\noutput: o\nnamespace: 6ba7b810-9dad-11d1-80b4-00c04fd430c8\ninterpreters: [3.0]\n",
			errContains: "invalid interpreter version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.NewLoader().Load(writeSettings(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
