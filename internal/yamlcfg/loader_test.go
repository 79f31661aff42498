package yamlcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/statespace/internal/hcl"
	"github.com/vk/statespace/internal/paramspace"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_KeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "sweep.yaml", `
project: morphct
parameters:
  input: [p3ht-trajectory.gsd]
  frame: [-1]
  acceptors: [null]
  lifetimes:
    description: Carrier lifetimes in seconds
    values: [[1e-13, 1e-12]]
  temperature: [300, 320]
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "morphct", model.Name())
	assert.Equal(t, []string{"input", "frame", "acceptors", "lifetimes", "temperature"}, model.Space.Names())
	count, err := model.Space.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	lifetimes, ok := model.Space.Parameter("lifetimes")
	require.True(t, ok)
	assert.Equal(t, "Carrier lifetimes in seconds", lifetimes.Description)
}

// The same sweep written in YAML and HCL must produce identical workspaces.
func TestLoad_MatchesHCLIdentities(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "sweep.yml", `
parameters:
  reorganization_energy: [0.3064]
  scale: [3.5636]
  donors: [data/p3ht_d_ids.csv]
  acceptors: [null]
  lifetimes: [[1e-13, 1e-12]]
  n_holes: [10]
`)
	hclPath := writeFile(t, dir, "sweep.hcl", `
parameter "reorganization_energy" { values = [0.3064] }
parameter "scale" { values = [3.5636] }
parameter "donors" { values = ["data/p3ht_d_ids.csv"] }
parameter "acceptors" { values = [null] }
parameter "lifetimes" { values = [[1e-13, 1e-12]] }
parameter "n_holes" { values = [10] }
`)

	fromYAML, err := NewLoader().Load(context.Background(), yamlPath)
	require.NoError(t, err)
	fromHCL, err := hcl.NewLoader().Load(context.Background(), hclPath)
	require.NoError(t, err)

	yamlPoints, err := paramspace.StatePoints(fromYAML.Space)
	require.NoError(t, err)
	hclPoints, err := paramspace.StatePoints(fromHCL.Space)
	require.NoError(t, err)

	require.Len(t, yamlPoints, 1)
	require.Len(t, hclPoints, 1)
	assert.Equal(t, hclPoints[0].String(), yamlPoints[0].String())
	assert.Equal(t, hclPoints[0].ID(), yamlPoints[0].ID())
}

func TestLoad_EmptyDocument(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "empty.yaml", "")
	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, model.Space.Len())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		content     string
		errContains string
		errIs       error
	}{
		{name: "invalid yaml", content: "parameters: [", errContains: "failed to parse"},
		{name: "top level list", content: "- a", errContains: "must be a mapping"},
		{name: "unknown key", content: "params: {}", errContains: `unsupported key "params"`},
		{name: "scalar values", content: "parameters:\n  a: 3", errContains: "must be a sequence"},
		{name: "missing values", content: "parameters:\n  a: {description: x}", errContains: "missing values"},
		{name: "duplicate parameter", content: "parameters:\n  a: [1]\n  a: [2]", errContains: `"a"`, errIs: paramspace.ErrDuplicateParameter},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), "sweep.yaml", tc.content)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
			}
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoad_DuplicateParameterAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "parameters:\n  temperature: [300]\n")
	writeFile(t, dir, "b.yml", "parameters:\n  temperature: [320]\n")

	_, err := NewLoader().Load(context.Background(), dir)
	require.ErrorIs(t, err, paramspace.ErrDuplicateParameter)
	assert.Contains(t, err.Error(), "b.yml")
}
