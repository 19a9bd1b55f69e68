package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("IDENTITY_PUBLIC_KEY", "")
	t.Setenv("IDENTITY_PRIVATE_KEY", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost:8080", cfg.Server.Address())
	assert.True(t, cfg.IsTesting())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "ledger.invalidations", cfg.Redis.InvalidationStream)
	assert.Equal(t, 5, cfg.Security.RateLimitPerSecond)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.NotNil(t, cfg.Identity.PrivateKey)
	assert.NotNil(t, cfg.Identity.PublicKey)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_CONNECTIONS", "7")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("IDENTITY_TOKEN_DURATION", "15m")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.spenzly.dev, https://spenzly.dev")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 7, cfg.Database.MaxConnections)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Identity.TokenDuration)
	assert.Equal(t, []string{"https://app.spenzly.dev", "https://spenzly.dev"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DB_MAX_CONNECTIONS", "many")
	t.Setenv("REDIS_ENABLED", "perhaps")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 25, cfg.Database.MaxConnections)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "ledger",
		Password: "secret",
		Name:     "ledger_db",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=ledger password=secret dbname=ledger_db sslmode=require", cfg.DSN())
}

func TestLoadKeysFromEnvVars_PublicKeyOnly(t *testing.T) {
	_, publicKey, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(publicKey)
	require.NoError(t, err)
	encoded := base64.StdEncoding.EncodeToString(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	cfg := &Config{Server: ServerConfig{Environment: "production"}}
	privateKey, loaded, err := cfg.loadKeysFromEnvVars("", encoded)

	require.NoError(t, err)
	assert.Nil(t, privateKey)
	assert.True(t, publicKey.Equal(loaded))
}

func TestLoadKeysFromEnvVars_InvalidEncoding(t *testing.T) {
	cfg := &Config{}

	_, _, err := cfg.loadKeysFromEnvVars("", "%%%not-base64%%%")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "IDENTITY_PUBLIC_KEY")
}

func TestLoadIdentityKeys_ProductionRequiresPublicKey(t *testing.T) {
	t.Setenv("IDENTITY_PUBLIC_KEY", "")

	cfg := &Config{Server: ServerConfig{Environment: "production"}}
	_, _, err := cfg.loadIdentityKeys()

	assert.Error(t, err)
}
