package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	s := New(filepath.Join(t.TempDir(), "none.yaml"))

	marks, err := s.LoadMarks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, marks)
}

func TestSaveAndReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "marks.yaml")
	ctx := context.Background()

	s := New(path)
	require.NoError(t, s.SaveMark(ctx, "evt1_24", 1000))
	require.NoError(t, s.SaveMark(ctx, "evt1_1", 2000))
	require.NoError(t, s.SaveMark(ctx, "evt1_24", 3000))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	marks, err := New(path).LoadMarks(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"evt1_24": 3000, "evt1_1": 2000}, marks)
}

func TestSaveKeepsExistingMarks(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "marks.yaml")
	ctx := context.Background()

	require.NoError(t, New(path).SaveMark(ctx, "a_24", 1))
	require.NoError(t, New(path).SaveMark(ctx, "b_1", 2))

	marks, err := New(path).LoadMarks(ctx)
	require.NoError(t, err)
	assert.Len(t, marks, 2)
}

func TestCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "marks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("marks: [not, a, map"), 0o600))

	_, err := New(path).LoadMarks(context.Background())
	require.Error(t, err)
}
