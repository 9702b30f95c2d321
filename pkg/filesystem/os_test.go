package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bash"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bash", ".bashrc"), []byte("export A=1\n"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "bash"), filepath.Join(dir, "link")))

	fsys := NewOS()

	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"bash", "link"}, names)

	data, err := fsys.ReadFile(filepath.Join(dir, "bash", ".bashrc"))
	require.NoError(t, err)
	assert.Equal(t, "export A=1\n", string(data))

	info, err := fsys.Stat(filepath.Join(dir, "link"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	linfo, err := fsys.Lstat(filepath.Join(dir, "link"))
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&os.ModeSymlink)

	_, err = fsys.Stat(filepath.Join(dir, "missing"))
	assert.True(t, os.IsNotExist(err))
}
