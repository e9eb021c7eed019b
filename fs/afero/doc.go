// Package afero provides core.Storage implementations backed by spf13/afero.
//
// NewOS wraps afero.NewOsFs and NewMemory wraps afero.NewMemMapFs. New
// adapts any other afero.Fs (for example afero.NewBasePathFs or a
// copy-on-write layer) given the storage type it should report.
//
// MemMapFs is more permissive than a real disk: it creates parents on
// Mkdir and removes populated directories. FS restores the single-level
// Mkdir and empty-only Remove semantics core.Storage documents.
package afero
