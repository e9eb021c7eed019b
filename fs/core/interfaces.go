package core

import (
	"io/fs"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/storage.go -pkg mocks . Storage

// FSType represents the underlying type of storage implementation.
type FSType int

const (
	// FSTypeUnknown indicates the storage type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local, disk-backed storage.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory storage.
	FSTypeMemory
	// FSTypeRemote indicates an object store reached over the network.
	FSTypeRemote
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	case FSTypeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Storage is the narrow set of primitives the path gateway consumes.
//
// Every name handed to a Storage is an actual path: tilde-expanded,
// host-separated and, when a sandbox is active, already rebased under the
// sandbox root. Storage implementations never see logical paths.
//
// Storage is composed of three sub-interfaces: ReadStorage, WriteStorage
// and ManageStorage.
type Storage interface {
	ReadStorage
	WriteStorage
	ManageStorage

	// Type returns the underlying storage type.
	Type() FSType
}

// ReadStorage defines read-only primitives.
type ReadStorage interface {
	// Stat returns file metadata, following symbolic links.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a nil error means the path is absent. A non-nil
	// error means existence could not be determined (e.g. permission denied).
	Exists(name string) (bool, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// ReadDir returns the entries of the named directory, excluding the
	// "." and ".." pseudo-entries. Order is provider-defined.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Glob returns the entries of dir whose names match pattern, using
	// path/filepath.Match syntax. It never descends into subdirectories
	// beyond the levels named in pattern. Returned names are full paths
	// (dir joined with the match). No match yields an empty result and a
	// nil error; a malformed pattern yields filepath.ErrBadPattern.
	Glob(dir, pattern string) ([]string, error)

	// Canonicalize returns the unique real form of an existing path
	// (absolute, cleaned, symbolic links followed). It fails if the path is
	// absent or the provider cannot canonicalize it.
	Canonicalize(name string) (string, error)
}

// WriteStorage defines write primitives.
type WriteStorage interface {
	// WriteFile writes data to the named file, creating or truncating it.
	// Callers create missing parent directories first; providers are not
	// required to.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a single directory. It fails with fs.ErrExist if the
	// path exists and with fs.ErrNotExist if the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any missing parents.
	// If path is already a directory, MkdirAll does nothing and returns nil.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageStorage defines removal and permission primitives.
type ManageStorage interface {
	// Remove removes the named file or empty directory.
	// Removing a non-empty directory fails.
	Remove(name string) error

	// Chmod changes the permission bits of the named entry.
	// Providers without a permission model return ErrUnsupported.
	Chmod(name string, mode fs.FileMode) error
}
