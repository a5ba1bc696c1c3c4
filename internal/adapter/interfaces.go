// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the Remote API of the inventory service.
//
// [ServerAdapter] decouples the service layer from the wire protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on
// resty.
//
// Non-2xx responses are returned as *[StatusError], which unwraps to one of
// the status sentinels in errors.go so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). Failures where no
// response arrived wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-skladischer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the inventory service Remote API. Every call completes
// exactly once with either a payload or an error and never retries.
//
// Methods that take a token attach it as a bearer credential when it is
// non-empty; the adapter itself holds no session.
type ServerAdapter interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, creds models.Credentials) error

	// Login exchanges credentials for an access token.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// GetUser returns the user with all storages and their items.
	GetUser(ctx context.Context, token, username string) (models.User, error)

	// GetStorage returns a single storage with its items.
	GetStorage(ctx context.Context, token, username, storage string) (models.Storage, error)

	// CreateStorage adds an empty storage to the user.
	CreateStorage(ctx context.Context, token, username string, req models.StorageRequest) error

	// DeleteStorage removes a storage and everything in it.
	DeleteStorage(ctx context.Context, token, username, storage string) error

	// CreateItem adds an item to a storage. The server assigns the code id,
	// the code image and the date added.
	CreateItem(ctx context.Context, token, username, storage string, req models.ItemRequest) error

	// DeleteItem removes the item with codeID from a storage.
	DeleteItem(ctx context.Context, token, username, storage, codeID string) error

	// UpdateItem changes the non-nil fields of an item.
	UpdateItem(ctx context.Context, token, username, storage, codeID string, req models.ItemUpdateRequest) error

	// Ping calls the liveness endpoint.
	Ping(ctx context.Context) error
}
