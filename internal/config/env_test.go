package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullConfig(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("AUTH_TOKEN_DURATION", "240h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/books")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("CONFIG", "/etc/book-catalog/config.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env-sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 240*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost:5432/books", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/etc/book-catalog/config.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	// pin every known variable to empty so an ambient environment cannot
	// leak into the assertion
	for _, name := range []string{
		"AUTH_TOKEN_SIGN_KEY", "AUTH_TOKEN_ISSUER", "AUTH_TOKEN_DURATION",
		"STORAGE_DB_DATABASE_URI", "SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
		"CONFIG",
	} {
		t.Setenv(name, "")
	}

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))
	assert.Equal(t, StructuredConfig{}, cfg)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "ten-days")

	var cfg StructuredConfig
	err := parseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
