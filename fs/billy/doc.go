// Package billy provides go-billy-backed implementations of core.Storage.
//
// NewLocal wraps billy's osfs and NewMemory wraps billy's memfs. Both accept
// absolute or relative actual paths; relative names are anchored at the
// working directory (local) or at the root (memory).
//
// Usage:
//
//	storage := billy.NewLocal()
//	gw := pathlib.NewGateway(storage)
//
// # Memory Storage
//
// For tests, use the in-memory storage. Sandboxes created on it never touch
// the disk:
//
//	gw := pathlib.NewGateway(billy.NewMemory())
//
// # Limitations
//
// Memory storage has no permission model: Chmod returns core.ErrUnsupported.
// billy's osfs creates missing parents when a file is written; callers that
// depend on a failing write must not rely on that.
//
// # Thread Safety
//
// Local storage is safe for concurrent use. billy's memfs is not; guard a
// shared memory storage externally.
package billy
