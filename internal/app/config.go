package app

import (
	"os"
	"strconv"
	"time"

	"github.com/tasknest/tasknest/pkg/jwtx"
)

type Config struct {
	Issuer      string        // Issuer claim for tokens, also the TOTP issuer label
	MFARequired bool          // When true, users without MFA are forced through setup at login
	SessionTTL  time.Duration // Session token lifetime (default: 24h)
	PendingTTL  time.Duration // Pending MFA token lifetime (default: 5m)

	DatabaseFile string // Path to SQLite database file (default: ./tasknest.db)
	PepperFile   string // Path to the password pepper file (default: ./pepper)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)

	Port                  int           // HTTP server port (default: 8080)
	ShutdownGracePeriod   time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval  time.Duration // Login history sweep interval (default: 1h)
	LoginHistoryRetention time.Duration // How long audit rows are kept (default: 90 days)
}

func LoadConfig() Config {
	return Config{
		Issuer:      getEnvOrDefault("AUTH_ISSUER", "tasknest"),
		MFARequired: getEnvBoolOrDefault("AUTH_MFA_REQUIRED", false),
		SessionTTL:  getEnvDurationOrDefault("AUTH_SESSION_TTL", jwtx.DefaultSessionTTL),
		PendingTTL:  getEnvDurationOrDefault("AUTH_PENDING_TTL", jwtx.DefaultPendingTTL),

		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "tasknest.db"),
		PepperFile:   getEnvOrDefault("PEPPER_FILE", "pepper"),

		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),

		Port:                  getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:   getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval:  getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),
		LoginHistoryRetention: getEnvDurationOrDefault("LOGIN_HISTORY_RETENTION", 90*24*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
