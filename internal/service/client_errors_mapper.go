// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-skladischer/internal/adapter"
)

// mapAdapterError translates an adapter error into the client taxonomy.
// Errors that are already classified pass through unchanged.
func mapAdapterError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTransportFailure) ||
		errors.Is(err, ErrRejectedByServer) ||
		errors.Is(err, ErrPreconditionNotMet) ||
		errors.Is(err, ErrStateClosed) {
		return err
	}

	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		return &RejectedError{
			Op:         op,
			StatusCode: statusErr.StatusCode,
			Reason:     statusErr.Body,
			Err:        statusErr.Err,
		}
	}

	// Anything else never produced a usable response.
	return &TransportError{Op: op, Err: err}
}
