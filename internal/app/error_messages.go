// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// development server handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "detail"
// field of HTTP error bodies or into log entries. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or misses required fields.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgMissingCredentials is returned when the login or registration form
	// has an empty username or password.
	MsgMissingCredentials = "username and password are required"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any registered account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNotAuthenticated is returned when a protected route is called
	// without an Authorization header.
	MsgNotAuthenticated = "not authenticated"

	// MsgAccessDenied is returned when the token subject differs from the
	// username in the request path.
	MsgAccessDenied = "access denied"

	// MsgUserAlreadyExists is a format string taking the username.
	MsgUserAlreadyExists = "User with username %s already exists."

	// MsgUserNotFound is a format string taking the username.
	MsgUserNotFound = "User '%s' not found."

	// MsgStorageAlreadyExists is a format string taking the storage name.
	MsgStorageAlreadyExists = "Storage name '%s' already exists and cannot be created."

	// MsgStorageNotFound is a format string taking the storage name.
	MsgStorageNotFound = "Storage '%s' not found."

	// MsgItemNotFound is a format string taking the item code id.
	MsgItemNotFound = "Item '%s' not found."

	// MsgZeroAmount is returned when an item would be created or updated
	// with no instances.
	MsgZeroAmount = "Cannot store an item with zero instances."

	// MsgNegativeAmount is returned for amounts below zero.
	MsgNegativeAmount = "Item amount cannot be negative."

	// MsgEmptyName is returned when a storage or item name is blank.
	MsgEmptyName = "Name cannot be empty."

	// MsgEmptyUpdate is returned when an item update carries no fields.
	MsgEmptyUpdate = "All update values are empty."
)
