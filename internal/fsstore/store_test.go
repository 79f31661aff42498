package fsstore

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/statespace/internal/workspace"
)

func TestStore_Project(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "project")
	s := New(root)

	_, err := s.ProjectName(ctx)
	require.ErrorIs(t, err, workspace.ErrNotFound)

	require.NoError(t, s.InitProject(ctx, "morphct"))
	require.NoError(t, s.InitProject(ctx, "morphct"))

	name, err := s.ProjectName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "morphct", name)

	src, err := os.ReadFile(filepath.Join(root, ProjectFileName))
	require.NoError(t, err)
	assert.Contains(t, string(src), `project = "morphct"`)
}

func TestStore_InitJobIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(t.TempDir())

	created, err := s.InitJob(ctx, "abc", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.InitJob(ctx, "abc", []byte(`{"a":2}`))
	require.NoError(t, err)
	assert.False(t, created)

	data, err := s.StatePoint(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data), "existing state point must not be overwritten")

	assert.DirExists(t, s.JobDir("abc"))
}

func TestStore_IDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(t.TempDir())

	ids, err := s.IDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	for _, id := range []string{"bbb", "aaa"} {
		_, err := s.InitJob(ctx, id, []byte(`{}`))
		require.NoError(t, err)
	}
	// A directory without a state point is not a job.
	require.NoError(t, os.MkdirAll(filepath.Join(s.Root(), WorkspaceDirName, "ccc"), 0o755))

	ids, err = s.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "bbb"}, ids)
}

func TestStore_IDsReportsUnreadableWorkspace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(t.TempDir())
	_, err := s.InitJob(ctx, "aaa", []byte(`{}`))
	require.NoError(t, err)

	// A self-referencing symlink fails Stat with ELOOP rather than ErrNotExist.
	dir := filepath.Join(s.Root(), WorkspaceDirName, "bbb")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	sp := filepath.Join(dir, StatePointFileName)
	require.NoError(t, os.Symlink(sp, sp))

	_, err = s.IDs(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "bbb")
}

func TestStore_Index(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(filepath.Join(t.TempDir(), "nested"))

	_, err := s.ReadIndex(ctx)
	require.ErrorIs(t, err, workspace.ErrNotFound)

	require.NoError(t, s.WriteIndex(ctx, []byte(`{}`)))
	data, err := s.ReadIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestStore_Errors(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir())

	_, err := s.InitJob(context.Background(), "../escape", []byte(`{}`))
	require.Error(t, err)

	_, err = s.StatePoint(context.Background(), "missing")
	require.ErrorIs(t, err, workspace.ErrNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.InitJob(ctx, "abc", []byte(`{}`))
	require.ErrorIs(t, err, context.Canceled)
}
