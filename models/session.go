package models

import (
	"strings"
	"time"
)

// DefaultTokenType is used when the login response does not name a token type.
const DefaultTokenType = "bearer"

// Session is the authenticated identity and bearer credential held in memory
// by the client. It is the only source of authorization for remote calls.
type Session struct {
	Username  string
	Token     string
	TokenType string

	// ExpiresAt is read from the token's exp claim when the token is a JWT.
	// It is informational only: the client never refreshes tokens.
	ExpiresAt time.Time
}

// NewSession builds a Session from a login response.
func NewSession(username string, resp LoginResponse) Session {
	tokenType := strings.TrimSpace(resp.TokenType)
	if tokenType == "" {
		tokenType = DefaultTokenType
	}

	return Session{
		Username:  username,
		Token:     strings.TrimSpace(resp.AccessToken),
		TokenType: tokenType,
	}
}

// Expired reports whether ExpiresAt is known and in the past relative to now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// LoginResponse is the body returned by the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
