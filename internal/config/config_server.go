package config

import (
	"fmt"
	"time"
)

// ServerApp holds token settings of the development server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ServerHTTP holds the listen settings of the development server.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerConfig is the development server view of [StructuredConfig].
type ServerConfig struct {
	App    ServerApp
	Server ServerHTTP
	Log    ClientLog
}

// GetServerConfig builds and validates the development server config.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Log: ClientLog{Level: cfg.Log.Level},
	}

	return serverCfg, serverCfg.validate()
}
