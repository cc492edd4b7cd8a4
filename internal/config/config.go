package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	DataSource struct {
		Proxy string `yaml:"proxy"`
	} `yaml:"data_source"`
	Watchlist struct {
		File string `yaml:"file"`
	} `yaml:"watchlist"`
	MarketSummary struct {
		IDX    []string `yaml:"idx"`
		Nasdaq []string `yaml:"nasdaq"`
	} `yaml:"market_summary"`
	Forecast struct {
		HorizonDays int `yaml:"horizon_days"`
	} `yaml:"forecast"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.DataSource.Proxy = v
	}
	if v := os.Getenv("WATCHLIST_FILE"); v != "" {
		cfg.Watchlist.File = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("FORECAST_HORIZON_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Forecast.HorizonDays = n
		}
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8000"
	}
	if cfg.Watchlist.File == "" {
		cfg.Watchlist.File = "data/stock_list.json"
	}
	if cfg.Forecast.HorizonDays == 0 {
		cfg.Forecast.HorizonDays = 90
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * 1-5"
	}
	if len(cfg.MarketSummary.IDX) == 0 {
		cfg.MarketSummary.IDX = []string{
			"BBCA.JK", "BBRI.JK", "BMRI.JK", "BBNI.JK", "TLKM.JK",
			"ASII.JK", "UNVR.JK", "ICBP.JK", "GOTO.JK", "ADRO.JK",
		}
	}
	if len(cfg.MarketSummary.Nasdaq) == 0 {
		cfg.MarketSummary.Nasdaq = []string{
			"NVDA", "AAPL", "MSFT", "AMZN", "GOOGL",
			"META", "TSLA", "AMD", "NFLX", "INTC",
		}
	}

	return cfg, nil
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	if c.Forecast.HorizonDays < 1 {
		return fmt.Errorf("forecast.horizon_days must be positive")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when bot_token is set")
	}
	return nil
}
