// Package errors defines the coded error type shared across services
package errors

// Import this package as perr (platform/errors) to avoid shadowing stdlib errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class on the wire.
// Values are stable for wire compatibility; add sparingly.
type ErrorCode string

const (
	// ErrorCodeUnknown marks errors nothing else claimed
	ErrorCodeUnknown ErrorCode = "UNKNOWN"

	// ErrorCodePanic marks panics caught by the recovery middleware
	ErrorCodePanic ErrorCode = "PANIC"

	// ErrorCodeUnavailable marks transient faults where a retry may succeed
	ErrorCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// ErrorCodeInvalidInput is for malformed request parameters
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrorCodeInvalidCourier is for unsupported or malformed courier names
	ErrorCodeInvalidCourier ErrorCode = "INVALID_COURIER"

	// ErrorCodeInvalidRegion is for unsupported or malformed region names
	ErrorCodeInvalidRegion ErrorCode = "INVALID_REGION"

	// ErrorCodeConfig is for configuration fetch or validation failures
	// with no cached fallback available
	ErrorCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrorCodeInternal is for calculation failures and other internal errors
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"

	// ErrorCodeValidation marks request payloads that failed validation
	ErrorCodeValidation ErrorCode = "VALIDATION"

	// ErrorCodeJSON marks bodies that could not be parsed as JSON
	ErrorCodeJSON ErrorCode = "JSON_ERROR"

	// ErrorCodeNotFound marks missing resources
	ErrorCodeNotFound ErrorCode = "NOT_FOUND"
)

// statusByCode maps each code class onto its HTTP status
var statusByCode = map[ErrorCode]int{
	ErrorCodeNotFound:       http.StatusNotFound,
	ErrorCodeInvalidCourier: http.StatusUnprocessableEntity,
	ErrorCodeInvalidRegion:  http.StatusUnprocessableEntity,
	ErrorCodeInvalidInput:   http.StatusBadRequest,
	ErrorCodeValidation:     http.StatusBadRequest,
	ErrorCodeJSON:           http.StatusBadRequest,
	ErrorCodeConfig:         http.StatusServiceUnavailable,
	ErrorCodeUnavailable:    http.StatusServiceUnavailable,
}

// HTTPStatusCode maps a code onto its HTTP status; unmapped codes are 500s
func HTTPStatusCode(c ErrorCode) int {
	status, ok := statusByCode[c]
	if !ok {
		status = http.StatusInternalServerError
	}
	return status
}

// ErrNotFound is a sentinel for the common missing-resource case
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a machine code, a developer-facing message, an optional
// offending field, an optional operation tag, and the wrapped cause.
type Error struct {
	cause error
	text  string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON shape the API returns for an error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause != nil:
		return e.text + ": " + e.cause.Error()
	default:
		return e.text
	}
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error { return e.cause }

// Code reports the machine code
func (e *Error) Code() ErrorCode { return e.code }

// Field reports the offending field, when one was attached
func (e *Error) Field() string { return e.field }

// Op reports the operation label, when one was attached
func (e *Error) Op() string { return e.op }

// ToWire converts an *Error to its wire payload
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.text, Field: e.field} }

// WireFrom best-effort maps any error to a wire payload; nil maps to the zero Wire
func WireFrom(err error) Wire {
	switch e, ok := As(err); {
	case err == nil:
		return Wire{}
	case ok:
		return e.ToWire()
	default:
		return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
	}
}

// Root follows the Unwrap chain to the deepest cause
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// CodeOf extracts the ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	e, ok := As(err)
	if !ok {
		return ErrorCodeUnknown
	}
	return e.code
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus resolves the HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As unwraps to (*Error, true) when err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// Mutators (copy-on-write)

// mutate copies the *Error inside err and applies fn; foreign errors are
// returned unchanged
func mutate(err error, fn func(*Error)) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	fn(&c)
	return &c
}

// WithField attaches a field name; foreign errors pass through unchanged
func WithField(err error, field string) error {
	return mutate(err, func(e *Error) { e.field = field })
}

// WithOp attaches an operation label; foreign errors pass through unchanged
func WithOp(err error, op string) error {
	return mutate(err, func(e *Error) { e.op = op })
}

// WithFieldChain attaches a field, lifting foreign errors into an *Error
// with the Unknown code
func WithFieldChain(err error, field string) error {
	if _, ok := As(err); !ok {
		return &Error{code: ErrorCodeUnknown, text: err.Error(), field: field, cause: err}
	}
	return WithField(err, field)
}

// Constructors

// New builds a coded error
func New(code ErrorCode, text string) error { return &Error{code: code, text: text} }

// Newf returns an *Error with code and a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, text: fmt.Sprintf(format, a...)}
}

// Wrap returns an *Error wrapping cause under code and message
func Wrap(cause error, code ErrorCode, text string) error {
	return &Error{code: code, text: text, cause: cause}
}

// Wrapf returns an *Error wrapping cause under code and a formatted message
func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, text: fmt.Sprintf(format, a...), cause: cause}
}

// WrapIf wraps only when err != nil
func WrapIf(err error, code ErrorCode, text string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, text)
}

// Sugar

// NotFoundf builds a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidInputf returns an invalid input error
func InvalidInputf(format string, a ...any) error { return Newf(ErrorCodeInvalidInput, format, a...) }

// InvalidCourierf returns an invalid courier error
func InvalidCourierf(format string, a ...any) error {
	return Newf(ErrorCodeInvalidCourier, format, a...)
}

// InvalidRegionf returns an invalid region error
func InvalidRegionf(format string, a ...any) error {
	return Newf(ErrorCodeInvalidRegion, format, a...)
}

// Configf returns a configuration error
func Configf(format string, a ...any) error { return Newf(ErrorCodeConfig, format, a...) }

// Validationf returns a validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// JSONErrf builds a JSON parse error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf builds a recovered-panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unavailablef builds a transient unavailability error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Internalf builds a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeInternal, format, a...) }

// HTTP bundles status + wire in one call for handlers
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

// Retry semantics

// Retryable reports whether a later attempt may succeed. Configuration fetch
// failures and transient unavailability qualify; bad input and calculation
// failures never do.
func Retryable(err error) bool {
	switch CodeOf(err) {
	case ErrorCodeConfig, ErrorCodeUnavailable:
		return true
	default:
		return false
	}
}
