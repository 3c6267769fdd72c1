package docchat

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// Per-item failures (one file, one page) are recovered locally and never
// carry these codes across a batch boundary; codes classify the errors
// that do reach callers.
const (
	ECONFLICT    = "conflict"     // conversation state is stale (index rebuilt)
	EEMPTYCORPUS = "empty_corpus" // ingestion produced zero usable chunks
	EINTERNAL    = "internal"     // unexpected failure
	EINVALID     = "invalid"      // validation failed
	ENOTFOUND    = "not_found"    // entity does not exist
	EQUOTA       = "quota"        // generation capability quota exhausted
	ERATELIMITED = "rate_limited" // transient throttling, retriable sooner
)

// Error represents an application-specific error. Errors can be unwrapped
// to inspect the code of a wrapped error.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docchat error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the root error, if available.
// Otherwise returns EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the root error, if available.
// Otherwise returns a generic error message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
