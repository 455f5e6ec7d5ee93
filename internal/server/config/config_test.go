package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, 5, cfg.PasswordResetExpiresMinutes)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.NotEqual(t, cfg.JWTSecret, cfg.JWTRefreshSecret,
		"access and refresh secrets must be independent")
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("JWT_SECRET", "env-access")
	t.Setenv("JWT_REFRESH_SECRET", "env-refresh")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("REFRESH_TOKEN_TTL", "48h")
	t.Setenv("PASSWORD_RESET_EXPIRES_MINUTES", "10")
	t.Setenv("SMTP_SECURE", "true")
	t.Setenv("ADMIN_EMAIL", "root@x.com")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "env-access", cfg.JWTSecret)
	assert.Equal(t, "env-refresh", cfg.JWTRefreshSecret)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 48*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, 10, cfg.PasswordResetExpiresMinutes)
	assert.True(t, cfg.SMTPSecure)
	assert.Equal(t, "root@x.com", cfg.AdminEmail)
}

func TestParseEnv_IgnoresUnsetAndInvalid(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "not-a-duration")
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "secretKey", cfg.JWTSecret, "unset env must keep default")
}

func TestLoadConfig_DefaultsWithoutEnv(t *testing.T) {
	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.EndpointAddrHTTP)
}
