// Package errors provides structured errors for path and storage operations.
//
// It extends Go's standard error handling with error codes, classification
// (retryable vs permanent), the failed operation and logical path, and
// context metadata. It stays compatible with the standard library errors
// package (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.ForPath(errors.CodeNotADirectory, "iterdir", "/etc/hosts", "not a directory")
//
// Wrapping storage errors:
//
//	data, err := storage.ReadFile(actual)
//	if err != nil {
//	    return errors.WrapPath(err, errors.CodeIO, "read", p.String(), "read failed")
//	}
//
// Inspecting errors:
//
//	switch {
//	case errors.HasCode(err, errors.CodeMissingParent):
//	    // create parents first
//	case errors.IsInvalidArgument(err):
//	    // wrong kind of path
//	case errors.IsRetryable(err):
//	    // storage hiccup
//	}
//
// # Error Codes
//
//   - Argument errors: CodeNotAFile, CodeNotADirectory, CodeAlreadyExists, CodeInvalidPattern
//   - Storage errors: CodeIO, CodeMissingParent, CodeNotFound
//   - Sandbox errors: CodeSandboxSetup, CodeSandboxActive
//   - System errors: CodeUnsupported, CodeInternal, CodeUnknown
//
// Only CodeIO is retryable by default. Classification is preserved when an
// Error is wrapped with Wrap and can be overridden with WithClassification.
package errors
