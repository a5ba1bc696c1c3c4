package adapter

import (
	"errors"
	"fmt"
)

// ErrTransport marks failures where no HTTP response was received
// (connection refused, timeout, cancelled context).
var ErrTransport = errors.New("transport failure")

// Status sentinels. A *StatusError unwraps to exactly one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrInvalidResponse is used for a successful status whose body cannot be
	// used (undecodable JSON, missing access token).
	ErrInvalidResponse = errors.New("invalid response")
)

// StatusError is a response the client could not accept.
type StatusError struct {
	StatusCode int
	// Body is the server's error detail, or the raw body when it has none.
	Body string
	Err  error
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.Err, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
