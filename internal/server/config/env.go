package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset variables
// leave the current value untouched; values that fail to parse are ignored
// rather than aborting startup.
//
// Recognized options:
//
//	HTTP_ADDR                       bind address (e.g., ":8080")
//	DATABASE_DSN                    PostgreSQL DSN
//	JWT_SECRET                      access-token HMAC secret
//	JWT_REFRESH_SECRET              refresh-token HMAC secret
//	ACCESS_TOKEN_TTL                access-token validity (Go duration, e.g. "15m")
//	REFRESH_TOKEN_TTL               refresh-token validity (Go duration, e.g. "168h")
//	PASSWORD_RESET_EXPIRES_MINUTES  reset-code validity window
//	BCRYPT_COST                     bcrypt cost factor
//	ADMIN_EMAIL / ADMIN_PASSWORD    bootstrap admin credentials
//	SMTP_HOST / SMTP_PORT / SMTP_USER / SMTP_PASS / SMTP_SECURE
//	MAIL_FROM                       From header for outbound mail
func parseEnv(config *Config) {
	setString(&config.EndpointAddrHTTP, "HTTP_ADDR")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.JWTSecret, "JWT_SECRET")
	setString(&config.JWTRefreshSecret, "JWT_REFRESH_SECRET")
	setDuration(&config.AccessTokenValidityDuration, "ACCESS_TOKEN_TTL")
	setDuration(&config.RefreshTokenValidityDuration, "REFRESH_TOKEN_TTL")
	setInt(&config.PasswordResetExpiresMinutes, "PASSWORD_RESET_EXPIRES_MINUTES")
	setInt(&config.BcryptCost, "BCRYPT_COST")
	setString(&config.AdminEmail, "ADMIN_EMAIL")
	setString(&config.AdminPassword, "ADMIN_PASSWORD")
	setString(&config.SMTPHost, "SMTP_HOST")
	setInt(&config.SMTPPort, "SMTP_PORT")
	setString(&config.SMTPUser, "SMTP_USER")
	setString(&config.SMTPPassword, "SMTP_PASS")
	setBool(&config.SMTPSecure, "SMTP_SECURE")
	setString(&config.MailFrom, "MAIL_FROM")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v == "true" || v == "1"
	}
}

func setDuration(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
