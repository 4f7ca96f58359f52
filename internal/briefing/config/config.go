package config

import (
	"golang-stock-briefing/pkg/config"
)

// Screener holds the configuration for the Yahoo Finance screener API.
type Screener struct {
	BaseURL             string   `mapstructure:"base_url"`
	Categories          []string `mapstructure:"categories"`
	CountPerCategory    int      `mapstructure:"count_per_category"`
	MaxRequestPerMinute int      `mapstructure:"max_request_per_minute"`
	CacheTTL            string   `mapstructure:"cache_ttl"`
}

// Exa holds the configuration for the Exa news search API. When APIKey
// is empty the Google News RSS fallback source is used instead.
type Exa struct {
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	CacheTTL            string `mapstructure:"cache_ttl"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// News holds the news enrichment window.
type News struct {
	WindowDays int `mapstructure:"window_days"`
	Limit      int `mapstructure:"limit"`
}

// Briefing holds composition settings.
type Briefing struct {
	Language string `mapstructure:"language"`
	Renderer string `mapstructure:"renderer"`
	FontPath string `mapstructure:"font_path"`
}

// Storage selects and configures the run snapshot store.
type Storage struct {
	Driver    string `mapstructure:"driver"`
	OutputDir string `mapstructure:"output_dir"`
}

// Scheduler holds the daily trigger settings.
type Scheduler struct {
	Cron     string `mapstructure:"cron"`
	Timezone string `mapstructure:"timezone"`
}

// EmailChannel configures the SMTP delivery channel.
type EmailChannel struct {
	SMTPHost   string   `mapstructure:"smtp_host"`
	SMTPPort   int      `mapstructure:"smtp_port"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"password"`
	From       string   `mapstructure:"from"`
	Recipients []string `mapstructure:"recipients"`
}

// ChatChannel configures the webhook delivery channel.
type ChatChannel struct {
	WebhookURL string   `mapstructure:"webhook_url"`
	Rooms      []string `mapstructure:"rooms"`
}

// Telegram holds configuration for the Telegram notifier channel.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Channels groups the default dispatch destinations for scheduled runs.
type Channels struct {
	Email    EmailChannel `mapstructure:"email"`
	Chat     ChatChannel  `mapstructure:"chat"`
	Telegram Telegram     `mapstructure:"telegram"`
}

// Config holds the full configuration for the briefing services.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	API       config.API      `mapstructure:"api"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	Screener  Screener        `mapstructure:"screener"`
	Exa       Exa             `mapstructure:"exa"`
	Gemini    Gemini          `mapstructure:"gemini"`
	News      News            `mapstructure:"news"`
	Briefing  Briefing        `mapstructure:"briefing"`
	Storage   Storage         `mapstructure:"storage"`
	Scheduler Scheduler       `mapstructure:"scheduler"`
	Channels  Channels        `mapstructure:"channels"`
}

// Load loads the briefing configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
