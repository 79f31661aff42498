package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestRun_FiveSingleValuedParameters(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	sweep := `
		project = "morphct"
		parameter "input" { values = ["p3ht-trajectory.gsd"] }
		parameter "frame" { values = [-1] }
		parameter "acceptors" { values = [null] }
		parameter "temperature" { values = [300] }
		parameter "lifetimes" { values = [[1e-13, 1e-12]] }
	`
	dir := t.TempDir()
	sweepPath := filepath.Join(dir, "sweep.hcl")
	require.NoError(t, os.WriteFile(sweepPath, []byte(sweep), 0600))
	root := filepath.Join(dir, "project")

	args := []string{"--root", root, sweepPath}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args, noEnv)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Initialized. (1 total jobs)\n", out.String())

	entries, err := os.ReadDir(filepath.Join(root, "workspace"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "exactly one job workspace must be created")

	// --- Act again: re-running creates no duplicates ---
	out.Reset()
	require.NoError(t, run(out, &bytes.Buffer{}, args, noEnv))
	require.Equal(t, "Initialized. (1 total jobs)\n", out.String())

	entries, err = os.ReadDir(filepath.Join(root, "workspace"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRun_ShippedSweep(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	args := []string{"--store=memory", filepath.Join("..", "..", "sweeps", "morphct.hcl")}

	require.NoError(t, run(out, &bytes.Buffer{}, args, noEnv))
	require.Equal(t, "Initialized. (1 total jobs)\n", out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-h"}, noEnv)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"}, noEnv)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvalidSweep(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sweepPath := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(sweepPath, []byte(`parameter "a" {`), 0600))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--store=memory", sweepPath}, noEnv)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}
