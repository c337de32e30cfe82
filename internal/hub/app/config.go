package app

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything the process needs, loaded once from the
// environment at startup and passed into constructors.
type Config struct {
	// HTTP
	Addr          string
	ShutdownGrace time.Duration

	// Auth
	JWTSecret    string
	Issuer       string
	AccessTTL    time.Duration
	ResetCodeTTL time.Duration

	// Bootstrap token. Empty disables the bootstrap endpoint.
	BootstrapToken string

	// Storage
	DatabaseFile string

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig reads configuration from the environment. The JWT secret is the
// only hard requirement; everything else has a development default.
func LoadConfig() (Config, error) {
	cfg := Config{
		Addr:           getEnvOrDefault("HTTP_ADDR", ":8080"),
		ShutdownGrace:  getDurationOrDefault("SHUTDOWN_GRACE", 10*time.Second),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Issuer:         getEnvOrDefault("JWT_ISSUER", "duetcareerhub"),
		AccessTTL:      getDurationOrDefault("ACCESS_TOKEN_TTL", time.Hour),
		ResetCodeTTL:   getDurationOrDefault("RESET_CODE_TTL", 10*time.Minute),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "careerhub.db"),
		SMTPHost:       getEnvOrDefault("SMTP_HOST", "localhost"),
		SMTPPort:       getIntOrDefault("SMTP_PORT", 587),
		SMTPUsername:   os.Getenv("SMTP_USERNAME"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		MailFrom:       getEnvOrDefault("MAIL_FROM", "no-reply@duetcareerhub.local"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDurationOrDefault(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
