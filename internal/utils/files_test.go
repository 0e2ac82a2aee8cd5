package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteArtifactCreatesDirAndReplaces(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fb_ads", "native")
	p, err := WriteArtifact(dir, "summary.md", []byte("one"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "summary.md"), p)
	_, err = WriteArtifact(dir, "summary.md", []byte("two"))
	require.NoError(t, err)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "two", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteCSVArtifactQuotes(t *testing.T) {
	dir := t.TempDir()
	p, err := WriteCSVArtifact(dir, "by_k_numeric.csv", []string{"k", "v_count"}, [][]string{{"a,b", "1"}, {"", ""}})
	require.NoError(t, err)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "k,v_count\n\"a,b\",1\n,\n", string(b))
}

func TestWriteJSONArtifact(t *testing.T) {
	p, err := WriteJSONArtifact(t.TempDir(), "run.json", map[string]int{"rows": 3})
	require.NoError(t, err)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"rows\": 3\n}\n", string(b))
}
