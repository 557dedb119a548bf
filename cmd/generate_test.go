package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
statements:
  - kind: create-database
    name: analytics
    if-not-exists: true
  - kind: drop-table
    name: stale
    database: analytics
    if-exists: true
`

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerateFile(t *testing.T) {
	path := writeManifest(t, "setup.yaml", testManifest)

	sql, err := generateFile(path)
	require.NoError(t, err)

	want := "CREATE DATABASE IF NOT EXISTS analytics;\n\n" +
		"DROP TABLE IF EXISTS analytics.stale;"
	assert.Equal(t, want, sql)
}

func TestGenerateFileErrors(t *testing.T) {
	_, err := generateFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeManifest(t, "bad.yaml", "statements:\n  - kind: explode\n")
	_, err = generateFile(bad)
	assert.Error(t, err)
}

func TestRunGenerateOutDir(t *testing.T) {
	path := writeManifest(t, "setup.yaml", testManifest)
	outDir := filepath.Join(t.TempDir(), "out")

	generateOutDir = outDir
	defer func() { generateOutDir = "" }()

	require.NoError(t, runGenerate(GenerateCmd, []string{path}))

	data, err := os.ReadFile(filepath.Join(outDir, "setup.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "CREATE DATABASE IF NOT EXISTS analytics;")
}

func TestSQLFileName(t *testing.T) {
	assert.Equal(t, "setup.sql", sqlFileName("/some/dir/setup.yaml"))
	assert.Equal(t, "setup.sql", sqlFileName("setup.yml"))
	assert.Equal(t, "plain.sql", sqlFileName("plain"))
}
