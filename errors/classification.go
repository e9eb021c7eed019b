package errors

// ErrorClassification indicates whether an error may succeed if the caller
// repeats the operation. The library itself never retries.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: a racing writer, a transiently locked file.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: reading a directory as a file, a missing parent directory.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIO: ClassificationRetryable,

	CodeNotAFile:       ClassificationPermanent,
	CodeNotADirectory:  ClassificationPermanent,
	CodeAlreadyExists:  ClassificationPermanent,
	CodeInvalidPattern: ClassificationPermanent,
	CodeMissingParent:  ClassificationPermanent,
	CodeNotFound:       ClassificationPermanent,
	CodeSandboxSetup:   ClassificationPermanent,
	CodeSandboxActive:  ClassificationPermanent,
	CodeUnsupported:    ClassificationPermanent,
	CodeInternal:       ClassificationPermanent,
	CodeUnknown:        ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
