package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "SERVER_PORT", "REDIS_URL", "OWNER_PASSWORD_HASH", "REPORT_TIMEZONE", "JWT_EXPIRY", "GEMINI_MODEL"} {
		t.Setenv(key, "") // restores the original value on cleanup
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Auth.OwnerPasswordHash)
	assert.Equal(t, 12*time.Hour, cfg.Auth.AccessTokenExpiry)
	assert.Equal(t, "America/Sao_Paulo", cfg.Report.TimeZone)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "not-a-number")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Auth.AccessTokenExpiry)
	assert.Equal(t, 5, cfg.Auth.LoginMaxAttempts)
}

func TestReportLocation(t *testing.T) {
	saoPaulo := ReportConfig{TimeZone: "America/Sao_Paulo"}.Location()
	assert.Equal(t, "America/Sao_Paulo", saoPaulo.String())
	_, offset := time.Date(2026, time.March, 1, 12, 0, 0, 0, saoPaulo).Zone()
	assert.Equal(t, -3*60*60, offset)
	assert.Equal(t, time.UTC, ReportConfig{TimeZone: "Mars/Olympus"}.Location())
}
