package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFiles_Directory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	for _, name := range []string{"b.hcl", "a.hcl", "notes.txt", "sub/c.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0600))
	}

	files, err := FindFiles(root, ".hcl")

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "sub", "c.hcl"),
	}, files)
}

func TestFindFiles_SingleFileIgnoresExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.txt")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	files, err := FindFiles(path, ".hcl")

	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestFindFiles_Missing(t *testing.T) {
	t.Parallel()

	_, err := FindFiles(filepath.Join(t.TempDir(), "nope"), ".hcl")

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindFiles_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { _, _ = FindFiles(".", "") })
}
