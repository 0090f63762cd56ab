package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.hcl"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), nil, 0644))

	t.Run("directory is searched recursively", func(t *testing.T) {
		files, err := FindFilesByExtension([]string{dir}, ".hcl")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.hcl"),
			filepath.Join(dir, "nested", "b.hcl"),
		}, files)
	})

	t.Run("file path is returned as-is", func(t *testing.T) {
		files, err := FindFilesByExtension([]string{filepath.Join(dir, "a.hcl")}, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.hcl")}, files)
	})

	t.Run("non-matching file is skipped", func(t *testing.T) {
		files, err := FindFilesByExtension([]string{filepath.Join(dir, "ignore.txt")}, ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing path is skipped", func(t *testing.T) {
		files, err := FindFilesByExtension([]string{"/does/not/exist"}, ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("overlapping paths are deduplicated", func(t *testing.T) {
		files, err := FindFilesByExtension([]string{dir, filepath.Join(dir, "a.hcl")}, ".hcl")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("empty extension panics", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = FindFilesByExtension([]string{dir}, "")
		})
	})
}
