package afero

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/pathlib/fs/core"
	"github.com/jmgilman/go/pathlib/fs/fstest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Type(t *testing.T) {
	assert.Equal(t, core.FSTypeLocal, NewOS().Type())
	assert.Equal(t, core.FSTypeMemory, NewMemory().Type())
	assert.Equal(t, core.FSTypeUnknown, New(afero.NewMemMapFs(), core.FSTypeUnknown).Type())
}

func TestFS_Unwrap(t *testing.T) {
	afs := afero.NewMemMapFs()
	s := New(afs, core.FSTypeMemory)
	require.Same(t, afs, s.Unwrap())

	require.NoError(t, afero.WriteFile(afs, "/direct.txt", []byte("x"), 0o644))
	ok, err := s.Exists("direct.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemory_MkdirRequiresParent(t *testing.T) {
	s := NewMemory()

	err := s.Mkdir("/a/b", 0o755)
	require.ErrorIs(t, err, core.ErrNotExist)

	ok, err := s.Exists("/a")
	require.NoError(t, err)
	assert.False(t, ok, "MemMapFs must not create the parent")
}

func TestMemory_MkdirParentIsFile(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.WriteFile("/file", []byte("x"), 0o644))

	err := s.Mkdir("/file/child", 0o755)
	require.Error(t, err)
	assert.False(t, errors.Is(err, core.ErrNotExist))
}

func TestMemory_RemoveNonEmpty(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.MkdirAll("/d", 0o755))
	require.NoError(t, s.WriteFile("/d/f", []byte("x"), 0o644))

	err := s.Remove("/d")
	require.ErrorIs(t, err, core.ErrNotEmpty)

	require.NoError(t, s.Remove("/d/f"))
	require.NoError(t, s.Remove("/d"))
}

func TestMemory_ReadFileOnDirectory(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.MkdirAll("/d", 0o755))

	_, err := s.ReadFile("/d")
	require.Error(t, err)
}

func TestMemory_GlobBracketedDir(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.MkdirAll("/data[1]", 0o755))
	require.NoError(t, s.WriteFile("/data[1]/a.txt", []byte("x"), 0o644))
	require.NoError(t, s.WriteFile("/data[1]/b.log", []byte("x"), 0o644))

	matches, err := s.Glob("/data[1]", "*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("/data[1]", "a.txt")}, matches)
}

func TestMemory_GlobNotADirectory(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.WriteFile("/f.txt", []byte("x"), 0o644))

	matches, err := s.Glob("/f.txt", "*")
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = s.Glob("/missing", "*")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestOS(t *testing.T) {
	fstest.TestSuiteWithConfig(t, func() core.Storage {
		return NewOS()
	}, fstest.LocalTestConfig())
}

func TestMemory(t *testing.T) {
	config := fstest.MemoryTestConfig()
	config.PermissionModel = true
	fstest.TestSuiteWithConfig(t, func() core.Storage {
		return NewMemory()
	}, config)
}
