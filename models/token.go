package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT issued by the dev server.
//
// The subject claim carries the username the token was issued to; the
// inventory endpoints compare it against the username path segment.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent as the bearer credential.
	SignedString string `json:"-"`

	// Username is a cached copy of the subject claim.
	Username string `json:"-"`
}

// GetUsername returns the token subject.
func (t *Token) GetUsername() (string, error) {
	if t.Username != "" {
		return t.Username, nil
	}

	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting username from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting username from token: empty subject")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
