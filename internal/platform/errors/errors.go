// Package errors provides the project's structured error: a code for machines, a message
// for humans and optional field and operation labels
package errors

// Import as perr so it never shadows the standard errors package

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies failures for callers and transports.
// Values are part of the JSON envelope; append only
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic
	// ErrorCodeInvalidArgument is for bad input such as a broken delimiter pack
	ErrorCodeInvalidArgument
	// ErrorCodeOutOfRange is for character offsets outside the text
	ErrorCodeOutOfRange
	// ErrorCodeValidation is for request payloads that fail validation
	ErrorCodeValidation
	// ErrorCodeJSON is for unreadable request bodies
	ErrorCodeJSON
	// ErrorCodeNotFound is for missing resources such as unknown presets
	ErrorCodeNotFound
)

var codeInfo = map[ErrorCode]struct {
	name   string
	status int
}{
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeOutOfRange:      {"out_of_range", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
}

// HTTPStatusCode maps a code to an HTTP status; unknown codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if info, ok := codeInfo[c]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// String names the code for logs
func (c ErrorCode) String() string {
	if info, ok := codeInfo[c]; ok {
		return info.name
	}
	return "unknown"
}

// Error is the project error. Mutators copy, so a shared *Error is never changed
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the part of an error that is safe to put on the wire
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// Error renders "op: msg: cause", skipping empty parts
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.msg
	if e.op != "" {
		s = e.op + ": " + s
	}
	if e.orig != nil {
		s = fmt.Sprintf("%s: %v", s, e.orig)
	}
	return s
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// As unwraps err to an *Error
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf extracts the code of err, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return err != nil && CodeOf(err) == code }

// WithField returns a copy of err naming the offending field. Foreign errors pass through
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp returns a copy of err labelled with op. Foreign errors pass through
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// New returns an *Error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with formatting
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrapf wraps orig with code and a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// OutOfRangef returns an out of range error
func OutOfRangef(format string, a ...any) error { return Newf(ErrorCodeOutOfRange, format, a...) }

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Internalf returns a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

// HTTP maps err to a status and its wire form. Only the message of our own errors is
// exposed; op and cause stay in the logs. Foreign errors keep their text
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	e, ok := As(err)
	if !ok {
		return http.StatusInternalServerError, Wire{Code: ErrorCodeUnknown, Message: err.Error()}
	}
	return HTTPStatusCode(e.code), Wire{Code: e.code, Message: e.msg, Field: e.field}
}
