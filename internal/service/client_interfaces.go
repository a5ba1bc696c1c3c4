package service

import (
	"context"

	"github.com/MKhiriev/go-skladischer/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is the Data Repository of the client: credential calls
// against the inventory service plus ownership of the session.
// It never retries; errors are classified by the client error taxonomy.
type ClientAuthService interface {
	// Register creates an account. It does not authenticate.
	Register(ctx context.Context, username, password string) error

	// Login exchanges credentials for a token and stores the resulting
	// session. On failure the previous session is left untouched.
	Login(ctx context.Context, username, password string) (models.Session, error)

	// Logout drops the session without contacting the server.
	Logout()

	// Ping checks that the inventory service is reachable.
	Ping(ctx context.Context) error
}

// SessionStore holds the in-memory session.
type SessionStore interface {
	Set(session models.Session)
	Clear()
	Current() (models.Session, bool)
	IsAuthenticated() bool
	Token() string
}
