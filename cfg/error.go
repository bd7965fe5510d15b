package cfg

import (
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrSpawn               = NewError("failed to start rustc")
	ErrProcess             = NewError("rustc exited unsuccessfully")
	ErrDecode              = NewError("rustc output is not valid UTF-8")
	ErrMissingField        = NewError("required field is missing from config")
	ErrInvalidEndian       = NewError("invalid target_endian value")
	ErrInvalidPointerWidth = NewError("invalid target_pointer_width value")
	ErrUnknownKey          = NewError("unknown configuration key")
	ErrExprCompile         = NewError("expression compilation failed")
	ErrExprEvaluate        = NewError("expression evaluation failed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
//
// Errors derived from a sentinel via [Error.With] or [Error.Wrap] remain
// matchable against that sentinel using errors.Is.
type Error struct {
	msg   string
	base  error       // Sentinel this error derives from
	cause error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build the message from whichever fields are set, innermost last:
	//
	//   1. "<msg>: <cause>" // base message and wrapped error both set
	//   2. "<msg>"          // wrapped error is nil
	//   3. "<cause>"        // base message is empty
	part := make([]string, 0, 2)

	switch {
	case e.msg != "":
		part = append(part, e.msg)
	case e.base != nil:
		part = append(part, e.base.Error())
	}

	if e.cause != nil {
		part = append(part, e.cause.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() []error {
	chain := make([]error, 0, 2)

	if e.base != nil {
		chain = append(chain, e.base)
	}

	if e.cause != nil {
		chain = append(chain, e.cause)
	}

	return chain
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if msg := e.msg; msg != "" {
		attrs = append(attrs, slog.String("error", msg))
	} else if e.base != nil {
		attrs = append(attrs, slog.String("error", e.base.Error()))
	}

	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Attrs returns the structured logging attributes attached to the error.
func (e *Error) Attrs() []slog.Attr {
	attrs := make([]slog.Attr, len(e.attrs))
	copy(attrs, e.attrs)

	return attrs
}

// Wrap creates a new Error that wraps err as the underlying cause.
// The receiver remains matchable with errors.Is on the result.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		base:  e,
		cause: err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
// The receiver remains matchable with errors.Is on the result.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		base:  e,
		attrs: newAttrs,
	}
}
