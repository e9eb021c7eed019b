package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Argument errors. The operation was invoked on a path that structurally
	// cannot satisfy its precondition.

	// CodeNotAFile indicates the path is not a regular file (missing or a directory).
	CodeNotAFile ErrorCode = "NOT_A_FILE"

	// CodeNotADirectory indicates the path is not a directory.
	CodeNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeAlreadyExists indicates a non-directory entry occupies a path that
	// was expected to be a directory.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeInvalidPattern indicates a malformed glob pattern.
	CodeInvalidPattern ErrorCode = "INVALID_PATTERN"

	// Storage errors.

	// CodeIO indicates a storage primitive failed even though the operation's
	// preconditions appeared to hold (permissions, races, full disks).
	CodeIO ErrorCode = "IO_FAILURE"

	// CodeMissingParent indicates a non-recursive mkdir found a missing ancestor.
	CodeMissingParent ErrorCode = "MISSING_PARENT"

	// CodeNotFound indicates a lookup (e.g. the home directory) produced nothing.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Sandbox errors.

	// CodeSandboxSetup indicates the sandbox directory could not be created.
	CodeSandboxSetup ErrorCode = "SANDBOX_SETUP_FAILED"

	// CodeSandboxActive indicates a sandbox was requested while another is active.
	CodeSandboxActive ErrorCode = "SANDBOX_ACTIVE"

	// System errors.

	// CodeUnsupported indicates the storage provider lacks a capability.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// invalidArgumentCodes are the codes reported by IsInvalidArgument.
var invalidArgumentCodes = map[ErrorCode]bool{
	CodeNotAFile:       true,
	CodeNotADirectory:  true,
	CodeAlreadyExists:  true,
	CodeInvalidPattern: true,
}
