package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_PORT", "LOG_LEVEL", "MONGODB_URI", "MONGODB_DB_NAME", "MONTH_CLOSE_CRON",
		"TIMEZONE", "GOOGLE_SHEETS_CREDENTIALS_PATH", "GOOGLE_SHEET_LEDGER_ID",
		"NOTIFY_WEBHOOK_URL", "NOTIFY_WEBHOOK_TOKEN", "NOTIFY_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("Port=%q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.MongoDB.DBName != "hanuram" {
		t.Fatalf("DBName=%q, want %q", cfg.MongoDB.DBName, "hanuram")
	}
	if cfg.Scheduler.MonthCloseCron != "0 6 1 * *" {
		t.Fatalf("MonthCloseCron=%q", cfg.Scheduler.MonthCloseCron)
	}
	if cfg.Sheets.Enabled() || cfg.Notify.Enabled() {
		t.Fatalf("optional integrations should default to disabled")
	}
	if cfg.Notify.Timeout != 15*time.Second {
		t.Fatalf("Timeout=%v, want 15s", cfg.Notify.Timeout)
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not overwrite variables that are already set, even empty ones.
	for _, k := range []string{"APP_PORT", "NOTIFY_WEBHOOK_URL"} {
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := []byte("APP_PORT=9090\nNOTIFY_WEBHOOK_URL=https://hooks.example.com/cost\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("APP_PORT")
		os.Unsetenv("NOTIFY_WEBHOOK_URL")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("Port=%q, want %q", cfg.Server.Port, "9090")
	}
	if !cfg.Notify.Enabled() {
		t.Fatalf("expected notify to be enabled")
	}
}

func TestValidate_SheetsNeedsCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_SHEET_LEDGER_ID", "sheet-123")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidate_RejectsUnknownTimezone(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIMEZONE", "Mars/Olympus")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected validation error")
	}
}
