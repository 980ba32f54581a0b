// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
	// Embedded zone database so report months bucket the same on hosts without zoneinfo.
	_ "time/tzdata"
)

// Database drivers supported by the persistence layer.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Gemini    GeminiConfig
	Twilio    TwilioConfig
	Email     EmailConfig
	Report    ReportConfig
	Documents DocumentsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Driver          string // sqlite or postgres
	URL             string // file path for sqlite, DSN for postgres
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration. An empty URL disables the settings cache.
type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

// AuthConfig holds owner authentication configuration.
// An empty OwnerPasswordHash disables authentication for local single-user installs.
type AuthConfig struct {
	JWTSecret          string
	AccessTokenExpiry  time.Duration
	OwnerPasswordHash  string
	LoginMaxAttempts   int
	LoginAttemptWindow time.Duration
}

// GeminiConfig holds the AI advisor configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// TwilioConfig holds WhatsApp delivery configuration.
type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	WhatsAppNumber string
}

// EmailConfig holds email service configuration.
type EmailConfig struct {
	ResendAPIKey string
	FromName     string
	FromEmail    string
}

// ReportConfig holds reporting configuration.
type ReportConfig struct {
	TimeZone string
}

// DocumentsConfig holds PDF rendering configuration.
type DocumentsConfig struct {
	FontFamily string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverSQLite),
			URL:             getEnv("DATABASE_URL", "inkprofit.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			CacheTTL: getEnvAsDuration("REDIS_CACHE_TTL", 10*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", "change-me-in-production"),
			AccessTokenExpiry:  getEnvAsDuration("JWT_EXPIRY", 12*time.Hour),
			OwnerPasswordHash:  getEnv("OWNER_PASSWORD_HASH", ""),
			LoginMaxAttempts:   getEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),
			LoginAttemptWindow: getEnvAsDuration("LOGIN_ATTEMPT_WINDOW", time.Minute),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Twilio: TwilioConfig{
			AccountSID:     getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:      getEnv("TWILIO_AUTH_TOKEN", ""),
			WhatsAppNumber: getEnv("TWILIO_WHATSAPP_NUMBER", ""),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromName:     getEnv("RESEND_FROM_NAME", "InkProfit"),
			FromEmail:    getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
		},
		Report: ReportConfig{
			TimeZone: getEnv("REPORT_TIMEZONE", "America/Sao_Paulo"),
		},
		Documents: DocumentsConfig{
			FontFamily: getEnv("DOCUMENT_FONT_FAMILY", "Helvetica"),
		},
	}
}

// Location resolves the report time zone, falling back to UTC when it is unknown.
func (c ReportConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		slog.Warn("Unknown report time zone, using UTC", "timezone", c.TimeZone, "error", err)
		return time.UTC
	}
	return loc
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
