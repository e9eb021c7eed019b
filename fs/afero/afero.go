package afero

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/pathlib/fs/core"
	"github.com/spf13/afero"
)

// FS implements core.Storage using afero.
type FS struct {
	fs     afero.Fs
	fsType core.FSType
}

// New wraps an existing afero.Fs. The type decides how names are made
// absolute: local storage resolves relative names against the working
// directory, every other type roots them at the separator.
func New(afs afero.Fs, fsType core.FSType) *FS {
	return &FS{fs: afs, fsType: fsType}
}

// NewOS creates an afero-backed storage over the operating system.
func NewOS() *FS {
	return New(afero.NewOsFs(), core.FSTypeLocal)
}

// NewMemory creates an afero-backed in-memory storage.
func NewMemory() *FS {
	return New(afero.NewMemMapFs(), core.FSTypeMemory)
}

// Unwrap returns the underlying afero.Fs.
func (a *FS) Unwrap() afero.Fs {
	return a.fs
}

// Type returns the storage type.
func (a *FS) Type() core.FSType {
	return a.fsType
}

func (a *FS) normalize(name string) string {
	if a.fsType == core.FSTypeLocal {
		if abs, err := filepath.Abs(name); err == nil {
			return abs
		}
	}
	return filepath.Join(string(filepath.Separator), name)
}

// Stat returns file metadata for the named file.
func (a *FS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(a.normalize(name))
}

// Exists reports whether the named file or directory exists.
func (a *FS) Exists(name string) (bool, error) {
	return afero.Exists(a.fs, a.normalize(name))
}

// ReadFile reads the named file. Reading a directory fails.
func (a *FS) ReadFile(name string) ([]byte, error) {
	name = a.normalize(name)
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

// ReadDir returns the entries of the named directory.
func (a *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, a.normalize(name))
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}

// Glob matches pattern against the names of the entries inside dir. The
// directory itself is never treated as a pattern.
func (a *FS) Glob(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, err
	}
	isDir, err := afero.IsDir(a.fs, a.normalize(dir))
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !isDir) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	entries, err := a.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var matches []string
	for _, e := range entries {
		if ok, _ := filepath.Match(pattern, e.Name()); ok {
			matches = append(matches, filepath.Join(dir, e.Name()))
		}
	}
	return matches, nil
}

// Canonicalize follows symbolic links on the operating system. Memory
// storage has no links, so the cleaned absolute name is already canonical.
func (a *FS) Canonicalize(name string) (string, error) {
	name = a.normalize(name)
	if _, err := a.fs.Stat(name); err != nil {
		return "", err
	}
	if a.fsType != core.FSTypeLocal {
		return name, nil
	}
	real, err := filepath.EvalSymlinks(name)
	if err != nil {
		return "", &fs.PathError{Op: "canonicalize", Path: name, Err: core.ErrNotCanonical}
	}
	return real, nil
}

// WriteFile writes data to the named file, creating or truncating it.
func (a *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, a.normalize(name), data, perm)
}

// Mkdir creates a single directory. MemMapFs creates missing parents on
// its own, so the parent is checked here.
func (a *FS) Mkdir(name string, perm fs.FileMode) error {
	name = a.normalize(name)
	parent := filepath.Dir(name)
	if parent != name {
		if ok, err := afero.DirExists(a.fs, parent); err != nil {
			return err
		} else if !ok {
			if exists, _ := afero.Exists(a.fs, parent); exists {
				return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrInvalid}
			}
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
		}
	}
	return a.fs.Mkdir(name, perm)
}

// MkdirAll creates a directory along with any missing parents.
func (a *FS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(a.normalize(path), perm)
}

// Remove removes a file or an empty directory. MemMapFs would drop a
// populated directory, so emptiness is checked first.
func (a *FS) Remove(name string) error {
	name = a.normalize(name)
	if isDir, err := afero.IsDir(a.fs, name); err == nil && isDir {
		empty, err := afero.IsEmpty(a.fs, name)
		if err != nil {
			return err
		}
		if !empty {
			return &fs.PathError{Op: "remove", Path: name, Err: core.ErrNotEmpty}
		}
	}
	return a.fs.Remove(name)
}

// Chmod changes the mode of the named file.
func (a *FS) Chmod(name string, mode fs.FileMode) error {
	return a.fs.Chmod(a.normalize(name), mode)
}

// Compile-time interface check.
var _ core.Storage = (*FS)(nil)
