package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is an Error, its classification, op and path are
// preserved. Otherwise, the default classification for the code is used.
//
// Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}

	wrapped := &pathError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		cause:          err,
	}

	var inner Error
	if errors.As(err, &inner) {
		wrapped.classification = inner.Classification()
		wrapped.op = inner.Op()
		wrapped.path = inner.Path()
	}

	return wrapped
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapPath wraps a storage error raised while running op against path.
// The classification comes from code, not from err: storage primitives
// return plain errors whose retry semantics are decided here.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := storage.WriteFile(actual, data, 0o644); err != nil {
//	    return errors.WrapPath(err, errors.CodeIO, "write", p.String(), "write failed")
//	}
func WrapPath(err error, code ErrorCode, op, path, message string) Error {
	if err == nil {
		return nil
	}

	return &pathError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		op:             op,
		path:           path,
		cause:          err,
	}
}
