package errors

// Error extends the standard error interface with structured information
// about a failed path operation.
//
// Error provides a code for categorization, a classification for retry
// decisions, the operation and logical path that failed, optional metadata,
// and compatibility with standard library error handling (errors.Is,
// errors.As, errors.Unwrap).
type Error interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Op returns the operation that failed (e.g. "read", "mkdir").
	// Returns "" if the error is not tied to an operation.
	Op() string

	// Path returns the logical path the operation was invoked on.
	// Returns "" if the error is not tied to a path.
	Path() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	Unwrap() error
}
