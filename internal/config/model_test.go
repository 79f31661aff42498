package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_ProjectName(t *testing.T) {
	t.Parallel()

	m := NewModel()
	assert.Equal(t, DefaultProjectName, m.Name())

	require.NoError(t, m.SetProjectName("", "a.hcl"))
	require.NoError(t, m.SetProjectName("morphct", "a.hcl"))
	require.NoError(t, m.SetProjectName("morphct", "b.hcl"))
	assert.Equal(t, "morphct", m.Name())

	err := m.SetProjectName("other", "c.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c.hcl")
}

func TestModel_Merge(t *testing.T) {
	t.Parallel()

	a := NewModel()
	require.NoError(t, a.Space.AddGo("x", 1))
	a.Files = []string{"a.hcl"}

	b := NewModel()
	b.ProjectName = "morphct"
	require.NoError(t, b.Space.AddGo("y", "v"))
	b.Files = []string{"b.yaml"}

	require.NoError(t, a.Merge(b, "yaml"))
	assert.Equal(t, []string{"x", "y"}, a.Space.Names())
	assert.Equal(t, "morphct", a.Name())
	assert.Equal(t, []string{"a.hcl", "b.yaml"}, a.Files)

	dup := NewModel()
	require.NoError(t, dup.Space.AddGo("x", 2))
	require.Error(t, a.Merge(dup, "dup"))
}
