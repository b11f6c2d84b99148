package config

import (
	"strings"
	"testing"
	"time"

	"marketscout/internal/cache"
	"marketscout/internal/ratelimit"
)

var requiredVars = map[string]string{
	"FINNHUB_API_KEY":   "test_finnhub_key",
	"MARKETAUX_API_KEY": "test_marketaux_key",
	"ALPACA_API_KEY":    "test_alpaca_key",
	"ALPACA_API_SECRET": "test_alpaca_secret",
}

func TestLoad_Success(t *testing.T) {
	for key, value := range requiredVars {
		t.Setenv(key, value)
	}
	t.Setenv("OPENAI_API_KEY", "test_openai_key")
	t.Setenv("FINNHUB_BASE_URL", "https://test.finnhub.io")
	t.Setenv("ALPACA_BASE_URL", "https://test.alpaca.markets")
	t.Setenv("LISTEN_ADDR", ":9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"FinnhubAPIKey", cfg.FinnhubAPIKey, "test_finnhub_key"},
		{"MarketauxAPIKey", cfg.MarketauxAPIKey, "test_marketaux_key"},
		{"AlpacaAPIKey", cfg.AlpacaAPIKey, "test_alpaca_key"},
		{"AlpacaAPISecret", cfg.AlpacaAPISecret, "test_alpaca_secret"},
		{"OpenAIAPIKey", cfg.OpenAIAPIKey, "test_openai_key"},
		{"FinnhubBaseURL", cfg.FinnhubBaseURL, "https://test.finnhub.io"},
		{"AlpacaBaseURL", cfg.AlpacaBaseURL, "https://test.alpaca.markets"},
		{"ListenAddr", cfg.ListenAddr, ":9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	for key, value := range requiredVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.FinnhubBaseURL != "https://finnhub.io/api/v1" {
		t.Errorf("FinnhubBaseURL = %q", cfg.FinnhubBaseURL)
	}
	if cfg.MarketauxBaseURL != "https://api.marketaux.com/v1" {
		t.Errorf("MarketauxBaseURL = %q", cfg.MarketauxBaseURL)
	}
	if cfg.ListenAddr != ":8000" {
		t.Errorf("ListenAddr = %q, want :8000", cfg.ListenAddr)
	}
	if cfg.RequestTimeout != 30*time.Second || cfg.TaskTimeout != 10*time.Second {
		t.Errorf("timeouts = %v/%v, want 30s/10s", cfg.RequestTimeout, cfg.TaskTimeout)
	}
	if cfg.QualityQuorum != 2 {
		t.Errorf("QualityQuorum = %d, want 2", cfg.QualityQuorum)
	}
	if len(cfg.IdentitySentinels) != 3 || cfg.IdentitySentinels[1] != "n/a" {
		t.Errorf("IdentitySentinels = %q", cfg.IdentitySentinels)
	}
	if cfg.StatsInterval != 0 {
		t.Errorf("StatsInterval = %v, want 0", cfg.StatsInterval)
	}

	ttls := cfg.TTLs()
	if ttls[cache.ClassStocks] != 6*time.Minute {
		t.Errorf("stocks TTL = %v, want 6m", ttls[cache.ClassStocks])
	}
	if ttls[cache.ClassProfile] != 168*time.Hour {
		t.Errorf("profile TTL = %v, want 168h", ttls[cache.ClassProfile])
	}
	if ttls[cache.ClassSearch] != 30*time.Minute {
		t.Errorf("search TTL = %v, want 30m", ttls[cache.ClassSearch])
	}

	if got := cfg.RateLimits()[ratelimit.APIFinnhub]; got != 0 {
		t.Errorf("finnhub rate limit = %v, want 0", got)
	}
}

func TestLoad_Overrides(t *testing.T) {
	for key, value := range requiredVars {
		t.Setenv(key, value)
	}
	t.Setenv("TTL_NEWS_HOURS", "0.25")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("QUALITY_QUORUM", "3")
	t.Setenv("FINNHUB_RATE_LIMIT", "1.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if got := cfg.TTLs()[cache.ClassNews]; got != 15*time.Minute {
		t.Errorf("news TTL = %v, want 15m", got)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
	if cfg.QualityQuorum != 3 {
		t.Errorf("QualityQuorum = %d, want 3", cfg.QualityQuorum)
	}
	if got := cfg.RateLimits()[ratelimit.APIFinnhub]; got != 1.5 {
		t.Errorf("finnhub rate limit = %v, want 1.5", got)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	for key := range requiredVars {
		t.Run("missing "+key, func(t *testing.T) {
			for k, v := range requiredVars {
				if k == key {
					t.Setenv(k, "")
					continue
				}
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), "missing required configuration") || !strings.Contains(err.Error(), key) {
				t.Errorf("error = %q, want it to name %s", err.Error(), key)
			}
		})
	}
}
