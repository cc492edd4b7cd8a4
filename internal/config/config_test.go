package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error, got %v", err)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("addr = %q, want :8000", cfg.Server.Addr)
	}
	if cfg.Forecast.HorizonDays != 90 {
		t.Errorf("horizon = %d, want 90", cfg.Forecast.HorizonDays)
	}
	if cfg.Schedule.DailyCron != "0 0 22 * * 1-5" {
		t.Errorf("daily cron = %q", cfg.Schedule.DailyCron)
	}
	if len(cfg.MarketSummary.IDX) == 0 || len(cfg.MarketSummary.Nasdaq) == 0 {
		t.Error("market summary lists should have defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  addr: ":9000"
forecast:
  horizon_days: 30
market_summary:
  idx: ["BBCA.JK"]
  nasdaq: ["AAPL", "MSFT"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %q, want :9000", cfg.Server.Addr)
	}
	if cfg.Forecast.HorizonDays != 30 {
		t.Errorf("horizon = %d, want 30", cfg.Forecast.HorizonDays)
	}
	if len(cfg.MarketSummary.Nasdaq) != 2 {
		t.Errorf("nasdaq list = %v", cfg.MarketSummary.Nasdaq)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":7000")
	t.Setenv("FORECAST_HORIZON_DAYS", "45")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("addr = %q, want :7000", cfg.Server.Addr)
	}
	if cfg.Forecast.HorizonDays != 45 {
		t.Errorf("horizon = %d, want 45", cfg.Forecast.HorizonDays)
	}
	if cfg.Telegram.BotToken != "token" || cfg.Telegram.ChatID != "42" {
		t.Error("telegram env overrides not applied")
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg.Telegram.BotToken = "token"
	cfg.Telegram.ChatID = ""
	if err := cfg.Validate(); err == nil {
		t.Error("bot token without chat id should fail validation")
	}

	cfg.Telegram.BotToken = ""
	cfg.Forecast.HorizonDays = 0
	if err := cfg.Validate(); err == nil {
		t.Error("non-positive horizon should fail validation")
	}
}
