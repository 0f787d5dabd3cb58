// Package apperror defines the error taxonomy surfaced by the domain layer.
// Handlers map these kinds to HTTP status codes at the delivery boundary;
// everything else is treated as an internal error.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain error
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindAuth
	KindToken
	KindForbidden
)

// Error is a domain error with a classification
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// Kind returns the error classification
func (e *Error) Kind() Kind {
	return e.kind
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Validation reports a missing or malformed request field
func Validation(format string, args ...interface{}) *Error {
	return newError(KindValidation, format, args...)
}

// NotFound reports a missing entity
func NotFound(format string, args ...interface{}) *Error {
	return newError(KindNotFound, format, args...)
}

// Auth reports a credential failure; the message must not disclose
// whether the account or the password was wrong
func Auth(format string, args ...interface{}) *Error {
	return newError(KindAuth, format, args...)
}

// Token reports an invalid or expired token
func Token(format string, args ...interface{}) *Error {
	return newError(KindToken, format, args...)
}

// Forbidden reports a rejected but well-formed credential, such as a
// reused refresh token
func Forbidden(format string, args ...interface{}) *Error {
	return newError(KindForbidden, format, args...)
}

// KindOf returns the classification of err, or KindInternal for
// errors outside the taxonomy
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsAuth reports whether err is an authentication error
func IsAuth(err error) bool { return KindOf(err) == KindAuth }

// IsToken reports whether err is a token error
func IsToken(err error) bool { return KindOf(err) == KindToken }

// IsForbidden reports whether err is a forbidden error
func IsForbidden(err error) bool { return KindOf(err) == KindForbidden }

// HTTPStatus maps an error to the status code the HTTP boundary returns
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth, KindToken:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
