package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/cache"
	"github.com/aussiebroadwan/yup/internal/rsvp/notify"
	"github.com/aussiebroadwan/yup/internal/rsvp/service"
	"github.com/aussiebroadwan/yup/pkg/jwtx"
	"github.com/joho/godotenv"
)

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite file (default: ./yup.db)
	DatabaseURL    string // Postgres URL, required for the postgres driver

	Issuer         string        // iss claim of session tokens (default: yup)
	SigningKeyFile string        // Ed25519 PEM; empty keeps the key in memory
	SessionTTL     time.Duration // default: 7 days
	PepperFile     string        // default: ./pepper

	PublicURL  string // base of invitation links (default: http://localhost:8080)
	LoginURL   string // premium gate redirect for anonymous callers
	UpgradeURL string // premium gate redirect for non-premium callers

	AdminOverrideUsernames []string // comma separated, always admin

	RedisAddr    string        // flag cache; empty uses an in-process cache
	FlagCacheTTL time.Duration // default: 5m

	AMQPURL string // SMS fan-out broker; empty disables it

	SMTP notify.SMTPConfig // email is disabled while Host is empty

	HousekeepingSchedule string // cron spec (default: @every 1h)
}

// LoadConfig reads the environment, after loading a .env file from the
// working directory when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		DatabaseDriver: strings.ToLower(getEnvOrDefault("YUP_DATABASE_DRIVER", "sqlite")),
		DatabaseFile:   getEnvOrDefault("YUP_DATABASE_FILE", "yup.db"),
		DatabaseURL:    os.Getenv("YUP_DATABASE_URL"),

		Issuer:         getEnvOrDefault("YUP_ISSUER", "yup"),
		SigningKeyFile: os.Getenv("YUP_SIGNING_KEY_FILE"),
		SessionTTL:     getEnvDurationOrDefault("YUP_SESSION_TTL", jwtx.DefaultSessionTTL),
		PepperFile:     getEnvOrDefault("YUP_PEPPER_FILE", "pepper"),

		PublicURL:  strings.TrimSuffix(getEnvOrDefault("YUP_PUBLIC_URL", "http://localhost:8080"), "/"),
		LoginURL:   getEnvOrDefault("YUP_LOGIN_URL", "/login"),
		UpgradeURL: getEnvOrDefault("YUP_UPGRADE_URL", "/upgrade"),

		AdminOverrideUsernames: splitList(os.Getenv("YUP_ADMIN_OVERRIDE_USERNAMES")),

		RedisAddr:    os.Getenv("YUP_REDIS_ADDR"),
		FlagCacheTTL: getEnvDurationOrDefault("YUP_FLAG_CACHE_TTL", cache.DefaultTTL),

		AMQPURL: os.Getenv("YUP_AMQP_URL"),

		SMTP: notify.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvIntOrDefault("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},

		HousekeepingSchedule: getEnvOrDefault("HOUSEKEEPING_SCHEDULE", service.DefaultHousekeepingSchedule),
	}

	return cfg
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
