package service

import (
	"errors"
	"fmt"
)

// Client error taxonomy. Every error published on the state's Err facet or
// returned from an [Op] matches exactly one of ErrTransportFailure,
// ErrRejectedByServer, ErrPreconditionNotMet or ErrStateClosed.
var (
	// ErrTransportFailure: the request was sent but no response arrived.
	ErrTransportFailure = errors.New("transport failure")
	// ErrRejectedByServer: a response arrived with a non-success status or an
	// unusable body.
	ErrRejectedByServer = errors.New("rejected by server")
	// ErrPreconditionNotMet: the intent was refused locally and no request
	// was sent.
	ErrPreconditionNotMet = errors.New("precondition not met")
	// ErrStateClosed: the operation completed after the state was closed.
	ErrStateClosed = errors.New("application state closed")

	ErrNotAuthenticated  = fmt.Errorf("%w: not authenticated", ErrPreconditionNotMet)
	ErrNoStorageSelected = fmt.Errorf("%w: no storage selected", ErrPreconditionNotMet)
	ErrUnknownStorage    = fmt.Errorf("%w: unknown storage", ErrPreconditionNotMet)
)

// TransportError carries the failed operation name and the underlying cause.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrTransportFailure, e.Err)
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransportFailure
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectedError describes a response the server refused. Err is the adapter
// status sentinel, so errors.Is works against both taxonomies.
type RejectedError struct {
	Op         string
	StatusCode int
	Reason     string
	Err        error
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v (status %d)", e.Op, ErrRejectedByServer, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v (status %d): %s", e.Op, ErrRejectedByServer, e.StatusCode, e.Reason)
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejectedByServer
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}
