package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr            string
	Environment     string
	EmailFrom       string
	EmailEnabled    bool
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPassword    string
	SMTPUseTLS      bool
	SupervisorEmail string
	SubmitSaveDelay time.Duration
	MaxBodyBytes    int64
	MetricsEnabled  bool
}

func Load() Config {
	return Config{
		Addr:            getEnv("APP_ADDR", ":8080"),
		Environment:     getEnv("APP_ENV", "development"),
		EmailFrom:       getEnv("EMAIL_FROM", "no-reply@parsu.edu.ph"),
		EmailEnabled:    getEnvBool("EMAIL_ENABLED", false),
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		SMTPUseTLS:      getEnvBool("SMTP_USE_TLS", true),
		SupervisorEmail: getEnv("SUPERVISOR_EMAIL", ""),
		SubmitSaveDelay: getEnvDuration("SUBMIT_SAVE_DELAY", 2*time.Second),
		MaxBodyBytes:    int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.SubmitSaveDelay < 0 {
		return fmt.Errorf("SUBMIT_SAVE_DELAY must not be negative")
	}
	if c.EmailEnabled && c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST must be set when EMAIL_ENABLED is true")
	}
	return nil
}
