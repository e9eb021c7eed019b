package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrUnsupported is returned when an operation is not supported by the provider.
	ErrUnsupported = errors.New("operation not supported")

	// ErrNotCanonical is returned by Canonicalize when a path exists but its
	// real form cannot be determined.
	ErrNotCanonical = errors.New("path cannot be canonicalized")

	// ErrNotEmpty is returned by Remove for a directory that still has entries.
	ErrNotEmpty = errors.New("directory not empty")
)
