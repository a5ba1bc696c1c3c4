// Package utils provides helpers shared by the client and the development
// server: context keys, JSON responses, the resty client wrapper, JWT
// handling and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey stores the authenticated username in a request context.
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext returns the username put into ctx by the auth
// middleware.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}

// WithUsername returns a copy of ctx carrying username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameCtxKey, username)
}
