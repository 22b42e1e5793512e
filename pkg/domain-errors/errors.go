// Package domainerrors carries a small coded error taxonomy shared by services
// and the HTTP layer. Services attach a Code; transport maps it to a status.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code classifies a failure independent of transport.
type Code string

const (
	// CodeValidation marks bad or forbidden caller input.
	CodeValidation Code = "validation"
	// CodeBadRequest marks a request that could not be decoded.
	CodeBadRequest Code = "bad_request"
	// CodeNotFound marks a resource the pipeline could not locate.
	CodeNotFound Code = "not_found"
	// CodeTimeout marks a bounded stage that exceeded its limit.
	CodeTimeout Code = "timeout"
	// CodeMalformedResponse marks unparseable structured data from an external service.
	CodeMalformedResponse Code = "malformed_response"
	// CodeInternal marks anything else.
	CodeInternal Code = "internal"
)

// Error is a coded domain error. Err is the optional underlying cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error without a cause.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether any error in the chain carries code.
func HasCode(err error, code Code) bool {
	var de *Error
	for err != nil {
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is an alias for HasCode kept for call sites that read better with it.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the outermost code in the chain, or CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HTTPStatus maps a code to its response status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
