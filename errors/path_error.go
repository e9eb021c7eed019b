package errors

import (
	"fmt"
	"strings"
)

// pathError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type pathError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	op             string
	path           string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] op path: message: cause", omitting empty parts.
func (e *pathError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] ", e.code)
	if e.op != "" {
		b.WriteString(e.op)
		b.WriteByte(' ')
	}
	if e.path != "" {
		fmt.Fprintf(&b, "%q", e.path)
	}
	if e.op != "" || e.path != "" {
		b.WriteString(": ")
	}
	b.WriteString(e.message)
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

// Code returns the error code.
func (e *pathError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *pathError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *pathError) Message() string {
	return e.message
}

// Op returns the failed operation.
func (e *pathError) Op() string {
	return e.op
}

// Path returns the logical path of the failed operation.
func (e *pathError) Path() string {
	return e.path
}

// Context returns a copy of the context map, or nil.
func (e *pathError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *pathError) Unwrap() error {
	return e.cause
}

func (e *pathError) clone() *pathError {
	c := *e
	c.context = copyContext(e.context)
	return &c
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
