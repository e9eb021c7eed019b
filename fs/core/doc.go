// Package core defines the storage capability consumed by the pathlib
// gateway.
//
// The gateway never talks to a filesystem directly: every read, write,
// listing or canonicalization goes through a Storage. That keeps the path
// logic independent of the backing device and lets tests swap in-memory
// providers or mocks.
//
// # Interface Hierarchy
//
// Storage is composed of three sub-interfaces:
//
//   - ReadStorage: Stat, Exists, ReadFile, ReadDir, Glob, Canonicalize
//   - WriteStorage: WriteFile, Mkdir, MkdirAll
//   - ManageStorage: Remove, Chmod
//
// # Provider Implementations
//
//   - github.com/jmgilman/go/pathlib/fs/billy - go-billy-backed local and memory providers
//   - github.com/jmgilman/go/pathlib/fs/afero - afero-backed local and memory providers
//   - github.com/jmgilman/go/pathlib/fs/minio - MinIO/S3 object storage provider
//
// Providers are validated with the conformance suite in
// github.com/jmgilman/go/pathlib/fs/fstest.
package core
