package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new Error with the context field added; existing fields are preserved.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "actual", "/tmp/sandbox-1/etc/hosts")
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}

	pe := toPathError(err).clone()
	if pe.context == nil {
		pe.context = make(map[string]interface{}, 1)
	}
	pe.context[key] = value
	return pe
}

// WithClassification overrides the classification of an error.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithClassification(err error, classification ErrorClassification) Error {
	if err == nil {
		return nil
	}

	pe := toPathError(err).clone()
	pe.classification = classification
	return pe
}

// toPathError returns the first Error in err's chain as a *pathError, or
// converts err into one with CodeUnknown.
func toPathError(err error) *pathError {
	var pe *pathError
	if errors.As(err, &pe) {
		return pe
	}

	var other Error
	if errors.As(err, &other) {
		return &pathError{
			code:           other.Code(),
			classification: other.Classification(),
			message:        other.Message(),
			op:             other.Op(),
			path:           other.Path(),
			context:        other.Context(),
			cause:          other.Unwrap(),
		}
	}

	return &pathError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
