// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"errors"
	"fmt"
)

var (
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrStorageAlreadyExists = errors.New("storage already exists")
	ErrStorageNotFound      = errors.New("storage not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrInvalidItem          = errors.New("invalid item")
	ErrInvalidName          = errors.New("invalid name")

	errNoAddress = errors.New("no listen address configured")
)

// InventoryError pairs an inventory sentinel with the message returned to
// the client in the "detail" field.
type InventoryError struct {
	Err    error
	Detail string
}

func newInventoryError(sentinel error, format string, args ...any) *InventoryError {
	return &InventoryError{Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}

func (e *InventoryError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *InventoryError) Unwrap() error {
	return e.Err
}
