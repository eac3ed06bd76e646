package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A manifest with a syntax error makes app.NewApp() panic during the
	// loading phase; run() must recover it into a plain error.
	invalidManifest := `
		node "Wait" {
			category = "leaf"
	// Missing closing brace here
	`
	tempDir := t.TempDir()
	manifestsDir := filepath.Join(tempDir, "modules")
	require.NoError(t, os.Mkdir(manifestsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(manifestsDir, "core.hcl"), []byte(invalidManifest), 0600))

	treePath := filepath.Join(tempDir, "main.xml")
	require.NoError(t, os.WriteFile(treePath, []byte(`<Wait duration="1"/>`), 0600))

	args := []string{"-manifests", manifestsDir, treePath}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
