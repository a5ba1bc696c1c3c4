package service

import (
	"context"

	"github.com/MKhiriev/go-skladischer/internal/adapter"
	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/MKhiriev/go-skladischer/internal/utils"
	"github.com/MKhiriev/go-skladischer/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	session SessionStore
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, session SessionStore, log *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, session: session, logger: log}
}

func (a *clientAuthService) Register(ctx context.Context, username, password string) error {
	err := a.adapter.Register(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return mapAdapterError("register", err)
	}

	a.logger.Info().Str("username", username).Msg("account registered")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (models.Session, error) {
	resp, err := a.adapter.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return models.Session{}, mapAdapterError("login", err)
	}

	session := models.NewSession(username, resp)

	// opaque tokens are fine, expiry is only shown to the user
	expiresAt, err := utils.ParseUnverifiedExpiry(session.Token)
	if err != nil {
		a.logger.Debug().Err(err).Msg("access token is not a readable JWT")
	} else {
		session.ExpiresAt = expiresAt
	}

	a.session.Set(session)
	a.logger.Info().Str("username", username).Time("expires_at", session.ExpiresAt).Msg("logged in")

	return session, nil
}

func (a *clientAuthService) Logout() {
	a.session.Clear()
	a.logger.Info().Msg("logged out")
}

func (a *clientAuthService) Ping(ctx context.Context) error {
	return mapAdapterError("ping", a.adapter.Ping(ctx))
}
