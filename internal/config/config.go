package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	MongoDB   MongoDBConfig
	Scheduler SchedulerConfig
	Sheets    SheetsConfig
	Notify    NotifyConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SchedulerConfig holds the month-close job settings.
type SchedulerConfig struct {
	MonthCloseCron string
	Timezone       string
}

// SheetsConfig points at the Google Sheets operating cost ledger. Leaving
// SpreadsheetID empty disables the ledger.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether the ledger is configured.
func (c SheetsConfig) Enabled() bool {
	return c.SpreadsheetID != ""
}

// NotifyConfig configures the outbound summary webhook. An empty URL disables it.
type NotifyConfig struct {
	WebhookURL string
	Token      string
	Timeout    time.Duration
}

// Enabled reports whether the webhook is configured.
func (c NotifyConfig) Enabled() bool {
	return c.WebhookURL != ""
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	timeout, err := time.ParseDuration(getenvWithDefault("NOTIFY_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("parse NOTIFY_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "hanuram"),
		},
		Scheduler: SchedulerConfig{
			MonthCloseCron: getenvWithDefault("MONTH_CLOSE_CRON", "0 6 1 * *"),
			Timezone:       getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_LEDGER_ID"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
			Token:      os.Getenv("NOTIFY_WEBHOOK_TOKEN"),
			Timeout:    timeout,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Scheduler.MonthCloseCron == "" {
		return errors.New("MONTH_CLOSE_CRON must be provided")
	}

	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q is invalid: %w", c.Scheduler.Timezone, err)
	}

	if c.Sheets.Enabled() && c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when GOOGLE_SHEET_LEDGER_ID is set")
	}

	if c.Notify.Enabled() && c.Notify.Timeout <= 0 {
		return errors.New("NOTIFY_TIMEOUT must be positive")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
