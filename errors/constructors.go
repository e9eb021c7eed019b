package errors

import "fmt"

// New creates a new Error with the given code and message.
// The error classification is determined by the error code using default mappings.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "home directory not found")
func New(code ErrorCode, message string) Error {
	return &pathError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new Error with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}

// ForPath creates a new Error bound to an operation and a logical path.
//
// Example:
//
//	err := errors.ForPath(errors.CodeNotAFile, "read", "/etc", "not a regular file")
func ForPath(code ErrorCode, op, path, message string) Error {
	return &pathError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		op:             op,
		path:           path,
	}
}
