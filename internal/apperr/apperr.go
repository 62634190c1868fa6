package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for transport mapping. Every service-level
// failure is wrapped in an *Error carrying exactly one Kind.
type Kind int

const (
	KindNotFound Kind = iota
	KindValidation
	KindForbidden
	KindConflict
	KindInternal
)

type Error struct {
	kind    Kind
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func NotFound(format string, args ...interface{}) error {
	return &Error{kind: KindNotFound, message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) error {
	return &Error{kind: KindValidation, message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...interface{}) error {
	return &Error{kind: KindForbidden, message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &Error{kind: KindConflict, message: fmt.Sprintf(format, args...)}
}

func Internal(format string, args ...interface{}) error {
	return &Error{kind: KindInternal, message: fmt.Sprintf(format, args...)}
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind == kind
	}
	return false
}

// Status maps an error to an HTTP status code. Unclassified errors are
// treated as internal so storage failures never leak detail as 4xx.
func Status(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message for an error. Internal and
// unclassified errors are collapsed to a generic message.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.kind != KindInternal {
		return appErr.message
	}
	return "internal server error"
}
