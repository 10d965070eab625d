package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesStructuredConfig(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "review-hub-test")
	t.Setenv("AUTH_TOKEN_DURATION", "12h")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/review_database")
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("CONFIG", "/tmp/cfg.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "review-hub-test", cfg.Auth.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.BCryptCost)
	assert.Equal(t, "postgres://localhost/review_database", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
