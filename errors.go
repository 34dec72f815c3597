package meshviewer

import "errors"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an error that carries no code.
	CodeUnknown Code = "UNKNOWN"

	// CodeInputMissing means the snapshot source does not exist.
	CodeInputMissing Code = "INPUT_MISSING"
	// CodeDecodeFailure means the snapshot source is not a list of snapshots.
	CodeDecodeFailure Code = "DECODE_FAILURE"
	// CodeRenderFailure means an image could not be produced.
	CodeRenderFailure Code = "RENDER_FAILURE"
	// CodeRenderIOFailure means a rendered artifact could not be written.
	CodeRenderIOFailure Code = "RENDER_IO_FAILURE"
	// CodeInvalidConfig means viewer or style settings are unusable.
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// Error is the domain error type.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NewError creates a domain error with a code and message.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError creates a domain error that wraps an underlying cause.
func WrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinels for errors.Is comparisons.
var (
	ErrInputMissing    = NewError(CodeInputMissing, "input missing")
	ErrDecodeFailure   = NewError(CodeDecodeFailure, "decode failure")
	ErrRenderFailure   = NewError(CodeRenderFailure, "render failure")
	ErrRenderIOFailure = NewError(CodeRenderIOFailure, "render io failure")
	ErrInvalidConfig   = NewError(CodeInvalidConfig, "invalid config")
)

// CodeOf returns the code of the first *Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
