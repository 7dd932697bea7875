package config

import (
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr           string        `yaml:"addr"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
	} `yaml:"server"`
	Widget struct {
		DefaultSymbol string        `yaml:"default_symbol"`
		Debounce      time.Duration `yaml:"debounce"`
	} `yaml:"widget"`
	DataSource struct {
		HistoryURL  string        `yaml:"history_url"`
		RelayURL    string        `yaml:"relay_url"`
		MetadataURL string        `yaml:"metadata_url"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"data_source"`
	Store struct {
		Backend    string `yaml:"backend"`
		SQLitePath string `yaml:"sqlite_path"`
		StateFile  string `yaml:"state_file"`
	} `yaml:"store"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Schedule.RefreshCron = "0 */5 * * * *"

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
	overrides := []struct {
		env string
		dst *string
	}{
		{"HTTP_ADDR", &cfg.Server.Addr},
		{"DEFAULT_SYMBOL", &cfg.Widget.DefaultSymbol},
		{"HISTORY_URL", &cfg.DataSource.HistoryURL},
		{"RELAY_URL", &cfg.DataSource.RelayURL},
		{"METADATA_URL", &cfg.DataSource.MetadataURL},
		{"STORE_BACKEND", &cfg.Store.Backend},
		{"SQLITE_PATH", &cfg.Store.SQLitePath},
		{"STATE_FILE", &cfg.Store.StateFile},
		{"TELEGRAM_BOT_TOKEN", &cfg.Telegram.BotToken},
		{"TELEGRAM_CHAT_ID", &cfg.Telegram.ChatID},
		{"HTTPS_PROXY", &cfg.Proxy},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}
	// An empty REFRESH_CRON disables the refresh job, so presence matters.
	if v, ok := os.LookupEnv("REFRESH_CRON"); ok {
		cfg.Schedule.RefreshCron = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 35 * time.Second
	}
	if cfg.Widget.DefaultSymbol == "" {
		cfg.Widget.DefaultSymbol = "AAPL"
	}
	if cfg.Widget.Debounce == 0 {
		cfg.Widget.Debounce = 250 * time.Millisecond
	}
	if cfg.DataSource.HistoryURL == "" {
		cfg.DataSource.HistoryURL = "https://stooq.com/q/d/l/"
	}
	if cfg.DataSource.RelayURL == "" {
		cfg.DataSource.RelayURL = "https://r.jina.ai/"
	}
	if cfg.DataSource.MetadataURL == "" {
		cfg.DataSource.MetadataURL = "https://financialmodelingprep.com/stable"
	}
	if cfg.DataSource.Timeout == 0 {
		cfg.DataSource.Timeout = 15 * time.Second
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "sqlite"
	}
	if cfg.Store.SQLitePath == "" {
		cfg.Store.SQLitePath = "data/tickerpane.db"
	}
	if cfg.Store.StateFile == "" {
		cfg.Store.StateFile = "data/prefs.json"
	}

	return cfg, nil
}

// TelegramEnabled reports whether the chat surface is configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != ""
}

// StorePath returns the file the selected store backend writes to.
func (c *Config) StorePath() string {
	if c.Store.Backend == "file" {
		return c.Store.StateFile
	}
	return c.Store.SQLitePath
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Widget.DefaultSymbol == "" {
		return fmt.Errorf("widget.default_symbol is required")
	}
	switch c.Store.Backend {
	case "sqlite", "file", "memory":
	default:
		return fmt.Errorf("store.backend must be sqlite, file or memory, got %q", c.Store.Backend)
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	if c.Schedule.RefreshCron != "" {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := parser.Parse(c.Schedule.RefreshCron); err != nil {
			return fmt.Errorf("schedule.refresh_cron: %w", err)
		}
	}
	if c.Server.RequestTimeout < 0 || c.DataSource.Timeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	// A history fetch may spend one data-source timeout on the direct URL and another on the relay.
	if c.Server.RequestTimeout > 0 && c.DataSource.Timeout > 0 && c.Server.RequestTimeout <= 2*c.DataSource.Timeout {
		return fmt.Errorf("server.request_timeout (%s) must exceed twice data_source.timeout (%s)",
			c.Server.RequestTimeout, c.DataSource.Timeout)
	}
	return nil
}
