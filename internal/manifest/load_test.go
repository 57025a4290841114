package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeManifest(t, `{"name": "io.github.acme/tool", "version": "1.0.0"}`)

	m, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, m.Name)
	assert.Equal(t, "io.github.acme/tool", *m.Name)
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrNotFound)
	// The path must appear in the message for display
	assert.Contains(t, err.Error(), path)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeManifest(t, `{"name": `)

	_, err := Load(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoad_NonObjectRoot(t *testing.T) {
	path := writeManifest(t, `["not", "an", "object"]`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrNotObject)
}
