package apierr

import (
	"fmt"
	"net/http"
)

const (
	CodeInvalidFilter = "invalid_filter"
	CodeNotFound      = "not_found"
	CodeUnavailable   = "unavailable"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// InvalidFilter marks a malformed query parameter. It is raised before any
// store query runs.
func InvalidFilter(format string, args ...interface{}) *Error {
	return New(http.StatusBadRequest, CodeInvalidFilter, fmt.Errorf(format, args...))
}

// NotFound marks a detail lookup with no matching row. The message names the
// missing identifier.
func NotFound(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf(format, args...))
}

// Unavailable wraps a store failure. The wrapped error is logged, never
// surfaced to the client.
func Unavailable(err error) *Error {
	return New(http.StatusServiceUnavailable, CodeUnavailable, err)
}
