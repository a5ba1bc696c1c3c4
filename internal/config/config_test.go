package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// ── builder ───────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a value set by an earlier source
// is not overwritten by a later one, while zero fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:1"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:2", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "http://json:9000", "request_timeout": "3s"},
		"workers": map[string]any{"refresh_interval": "1m"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "http://json:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

// ── env ───────────────────────────────────────────────────────────────────────

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":                   "/path/to/config.json",
		"APP_TOKEN_SIGN_KEY":       "jwt_secret",
		"APP_TOKEN_ISSUER":         "test_issuer",
		"APP_TOKEN_DURATION":       "1h",
		"ADAPTER_ADDRESS":          "http://inventory:8000",
		"ADAPTER_REQUEST_TIMEOUT":  "5s",
		"SERVER_ADDRESS":           "localhost:9090",
		"SERVER_REQUEST_TIMEOUT":   "30s",
		"WORKERS_REFRESH_INTERVAL": "45s",
		"LOG_FILE":                 "/tmp/client.log",
		"LOG_LEVEL":                "debug",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "http://inventory:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_REFRESH_INTERVAL", "soon")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

// ── flags ─────────────────────────────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "all interfaces", input: ":8080", want: ":8080"},
		{name: "hostname", input: "example.com:80", wantErr: true},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8081",
		"-server", "http://inventory:8000",
		"-request-timeout", "2s",
		"-config", "cfg.json",
		"-log-level", "warn",
		"-refresh-interval", "10s",
		"-token-sign-key", "key",
		"-token-duration", "2h",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://inventory:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 10*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-unknown"})
	assert.Error(t, err)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// ── json ──────────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestParseJSON_InvalidBody(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "broken-*.json")
	require.NoError(t, err)
	_, _ = f.WriteString("{not json")
	require.NoError(t, f.Close())

	_, err = parseJSON(f.Name())
	assert.Error(t, err)
}

// ── client / server views ─────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestGetClientConfig_EnvBeatsFlags(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://from-env:1")

	cfg, err := GetClientConfig([]string{"-server", "http://from-flag:2"})
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:1", cfg.Adapter.HTTPAddress)
}

func TestGetClientConfig_InvalidRefreshInterval(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://x", RequestTimeout: time.Second},
		Workers: ClientWorkers{RefreshInterval: -time.Second},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestGetServerConfig_RequiresSignKey(t *testing.T) {
	_, err := GetServerConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)

	cfg, err := GetServerConfig([]string{"-token-sign-key", "secret", "-a", "localhost:9000"})
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
}
