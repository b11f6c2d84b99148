package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"marketscout/internal/cache"
	"marketscout/internal/ratelimit"
)

// Config holds all configuration for the market data service.
type Config struct {
	// API keys for the upstream providers
	FinnhubAPIKey   string `mapstructure:"finnhub_api_key"`
	MarketauxAPIKey string `mapstructure:"marketaux_api_key"`
	AlpacaAPIKey    string `mapstructure:"alpaca_api_key"`
	AlpacaAPISecret string `mapstructure:"alpaca_api_secret"`
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`

	// Base URLs for API endpoints (configurable for testing)
	FinnhubBaseURL    string `mapstructure:"finnhub_base_url"`
	MarketauxBaseURL  string `mapstructure:"marketaux_base_url"`
	AlpacaBaseURL     string `mapstructure:"alpaca_base_url"`
	GoogleNewsBaseURL string `mapstructure:"googlenews_base_url"`
	OpenAIBaseURL     string `mapstructure:"openai_base_url"`
	OpenAIModel       string `mapstructure:"openai_model"`

	// HTTP server
	ListenAddr     string   `mapstructure:"listen_addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// Deadlines
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	TaskTimeout    time.Duration `mapstructure:"task_timeout"`

	// Quality gate
	QualityQuorum     int      `mapstructure:"quality_quorum"`
	IdentitySentinels []string `mapstructure:"identity_sentinels"`
	MaxQuarters       int      `mapstructure:"max_quarters"`

	// Cache TTLs in (fractional) hours
	TTLNewsHours    float64       `mapstructure:"ttl_news_hours"`
	TTLFinnhubHours float64       `mapstructure:"ttl_finnhub_hours"`
	TTLSearchHours  float64       `mapstructure:"ttl_search_hours"`
	TTLStocksHours  float64       `mapstructure:"ttl_stocks_hours"`
	TTLProfileHours float64       `mapstructure:"ttl_profile_hours"`
	StatsInterval   time.Duration `mapstructure:"stats_interval"`

	// Upstream rate limits in requests per second; 0 disables limiting
	FinnhubRateLimit    float64 `mapstructure:"finnhub_rate_limit"`
	MarketauxRateLimit  float64 `mapstructure:"marketaux_rate_limit"`
	AlpacaRateLimit     float64 `mapstructure:"alpaca_rate_limit"`
	GoogleNewsRateLimit float64 `mapstructure:"googlenews_rate_limit"`
	AlpacaMaxPages      int     `mapstructure:"alpaca_max_pages"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

var defaults = map[string]any{
	"finnhub_api_key":   "",
	"marketaux_api_key": "",
	"alpaca_api_key":    "",
	"alpaca_api_secret": "",
	"openai_api_key":    "",

	"finnhub_base_url":    "https://finnhub.io/api/v1",
	"marketaux_base_url":  "https://api.marketaux.com/v1",
	"alpaca_base_url":     "https://data.alpaca.markets",
	"googlenews_base_url": "https://www.google.com",
	"openai_base_url":     "",
	"openai_model":        "gpt-4o",

	"listen_addr":     ":8000",
	"allowed_origins": []string{"http://localhost:5173", "http://127.0.0.1:5173"},

	"request_timeout": "30s",
	"task_timeout":    "10s",

	"quality_quorum":     2,
	"identity_sentinels": []string{"", "n/a", "null"},
	"max_quarters":       4,

	"ttl_news_hours":    1.0,
	"ttl_finnhub_hours": 6.0,
	"ttl_search_hours":  0.5,
	"ttl_stocks_hours":  0.1,
	"ttl_profile_hours": 168.0,
	"stats_interval":    "0s",

	"finnhub_rate_limit":    0.0,
	"marketaux_rate_limit":  0.0,
	"alpaca_rate_limit":     0.0,
	"googlenews_rate_limit": 0.0,
	"alpaca_max_pages":      10,

	"log_level":  "info",
	"log_format": "text",
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values. Every key is
// read from the upper-cased environment variable of the same name, e.g.
// FINNHUB_API_KEY or TTL_PROFILE_HOURS.
//
// Required: FINNHUB_API_KEY, MARKETAUX_API_KEY, ALPACA_API_KEY, ALPACA_API_SECRET.
// OPENAI_API_KEY is optional; without it search returns headlines with a
// degraded sentiment summary.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("") // No prefix, use full names
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.marketscout")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	for key := range defaults {
		v.BindEnv(key, strings.ToUpper(key))
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	var missing []string
	if config.FinnhubAPIKey == "" {
		missing = append(missing, "FINNHUB_API_KEY")
	}
	if config.MarketauxAPIKey == "" {
		missing = append(missing, "MARKETAUX_API_KEY")
	}
	if config.AlpacaAPIKey == "" {
		missing = append(missing, "ALPACA_API_KEY")
	}
	if config.AlpacaAPISecret == "" {
		missing = append(missing, "ALPACA_API_SECRET")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return config, nil
}

// TTLs returns the cache class table.
func (c *Config) TTLs() map[cache.Class]time.Duration {
	return map[cache.Class]time.Duration{
		cache.ClassNews:    cache.Hours(c.TTLNewsHours),
		cache.ClassFinnhub: cache.Hours(c.TTLFinnhubHours),
		cache.ClassSearch:  cache.Hours(c.TTLSearchHours),
		cache.ClassStocks:  cache.Hours(c.TTLStocksHours),
		cache.ClassProfile: cache.Hours(c.TTLProfileHours),
	}
}

// RateLimits returns the per-upstream limits for ratelimit.New.
func (c *Config) RateLimits() map[ratelimit.API]float64 {
	return map[ratelimit.API]float64{
		ratelimit.APIFinnhub:    c.FinnhubRateLimit,
		ratelimit.APIMarketaux:  c.MarketauxRateLimit,
		ratelimit.APIAlpaca:     c.AlpacaRateLimit,
		ratelimit.APIGoogleNews: c.GoogleNewsRateLimit,
	}
}
