package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/pathlib/fs/core"
)

// FS adapts a billy.Filesystem to core.Storage.
type FS struct {
	bfs    billy.Filesystem
	fsType core.FSType
}

// NewLocal creates a go-billy-backed local storage.
// The billy filesystem is rooted at "/"; relative names are resolved
// against the process working directory before they reach billy.
func NewLocal() *FS {
	return &FS{
		bfs:    osfs.New("/"),
		fsType: core.FSTypeLocal,
	}
}

// NewMemory creates a go-billy-backed in-memory storage.
// The storage is initially empty except for the root directory.
func NewMemory() *FS {
	return &FS{
		bfs:    memfs.New(),
		fsType: core.FSTypeMemory,
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (s *FS) Unwrap() billy.Filesystem {
	return s.bfs
}

// Type returns the storage type.
func (s *FS) Type() core.FSType {
	return s.fsType
}

// normalize turns name into the absolute, cleaned form billy expects.
func (s *FS) normalize(name string) string {
	if s.fsType == core.FSTypeLocal {
		if abs, err := filepath.Abs(name); err == nil {
			return abs
		}
	}
	return filepath.Join(string(filepath.Separator), name)
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Stat returns file metadata for the named file.
func (s *FS) Stat(name string) (fs.FileInfo, error) {
	return s.bfs.Stat(s.normalize(name))
}

// Exists reports whether the named file or directory exists.
func (s *FS) Exists(name string) (bool, error) {
	_, err := s.bfs.Stat(s.normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ReadFile reads the named file and returns its contents.
func (s *FS) ReadFile(name string) ([]byte, error) {
	f, err := s.bfs.Open(s.normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// ReadDir returns the entries of the named directory.
func (s *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	// Billy's ReadDir returns []fs.FileInfo, we need to convert to []fs.DirEntry
	infos, err := s.bfs.ReadDir(s.normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// Glob returns the entries of dir whose names match pattern. Only the
// entry names are matched, so metacharacters in dir are taken literally.
// A missing dir, or one that is not a directory, has no matches.
func (s *FS) Glob(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, err
	}
	info, err := s.Stat(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}
	entries, err := s.ReadDir(dir)
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

// Canonicalize returns the real form of an existing path.
func (s *FS) Canonicalize(name string) (string, error) {
	name = s.normalize(name)
	if s.fsType == core.FSTypeLocal {
		real, err := filepath.EvalSymlinks(name)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", &fs.PathError{Op: "canonicalize", Path: name, Err: core.ErrNotCanonical}
		}
		return real, err
	}
	if _, err := s.bfs.Stat(name); err != nil {
		return "", err
	}
	return name, nil
}

// WriteFile writes data to the named file, creating or truncating it.
func (s *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(s.bfs, s.normalize(name), data, perm)
}

// Mkdir creates a new directory with the specified name and permission bits.
// Unlike MkdirAll, this will fail if the parent directory does not exist.
func (s *FS) Mkdir(name string, perm fs.FileMode) error {
	name = s.normalize(name)
	if _, err := s.bfs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.Dir(name)
	if parent != name {
		info, err := s.bfs.Stat(parent)
		if err != nil {
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
		}
		if !info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrInvalid}
		}
	}
	// MkdirAll won't create parents since we verified the parent exists
	return s.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (s *FS) MkdirAll(path string, perm fs.FileMode) error {
	return s.bfs.MkdirAll(s.normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (s *FS) Remove(name string) error {
	return s.bfs.Remove(s.normalize(name))
}

// Chmod changes the permission bits of the named entry.
// The chroot helper billy wraps around osfs hides billy.Change, so local
// storage goes to the operating system directly.
func (s *FS) Chmod(name string, mode fs.FileMode) error {
	name = s.normalize(name)
	if s.fsType == core.FSTypeLocal {
		return os.Chmod(name, mode)
	}
	if ch, ok := s.bfs.(billy.Change); ok {
		return ch.Chmod(name, mode)
	}
	return core.ErrUnsupported
}

// Compile-time interface check.
var _ core.Storage = (*FS)(nil)
