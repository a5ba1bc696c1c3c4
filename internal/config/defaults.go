package config

import "time"

const (
	DefaultAdapterAddress  = "http://localhost:8080"
	DefaultServerAddress   = "localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultTokenIssuer     = "skladischer"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultRefreshInterval = 30 * time.Second
	DefaultLogLevel        = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			RefreshInterval: DefaultRefreshInterval,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
