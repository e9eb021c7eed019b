package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Join returns an error that wraps the given errors, discarding nils.
// This is a convenience wrapper around the standard library errors.Join.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not an Error.
//
// The code of the outermost Error in the chain wins.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeMissingParent {
//	    // retry with parents=true
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var pathErr Error
	if stderrors.As(err, &pathErr) {
		return pathErr.Code()
	}

	return CodeUnknown
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}

// IsInvalidArgument reports whether err was raised because an operation was
// invoked on a path that cannot satisfy its precondition (not a file, not a
// directory, occupied by another kind of entry, malformed pattern).
func IsInvalidArgument(err error) bool {
	return err != nil && invalidArgumentCodes[GetCode(err)]
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not an Error.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var pathErr Error
	if stderrors.As(err, &pathErr) {
		return pathErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not an Error.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
