package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort             = 8080
	defaultSerpAPIBaseURL   = "https://serpapi.com/search.json"
	defaultLookupTimeout    = 10 * time.Second
	defaultLookupRPS        = 5.0
	defaultMarketCacheTTL   = time.Hour
	defaultMarginPct        = 0.10
	maxPresentationMargin   = 0.5
	defaultShoppingLanguage = "en"
	defaultShoppingCountry  = "us"
)

// Config is the process-wide configuration, read once at startup.
//
// Supported env vars (.env is autoloaded by cmd/api):
//   - PORT (default: 8080)
//   - SERPAPI_API_KEY (required unless MARKET_PRICE_MOCK is on)
//   - SERPAPI_BASE_URL (default: https://serpapi.com/search.json)
//   - MARKET_LOOKUP_TIMEOUT (default: 10s)
//   - MARKET_LOOKUP_RPS (default: 5)
//   - MARKET_PRICE_MOCK (serve prices from MARKET_PRICE_FIXTURES instead of SerpAPI)
//   - MARKET_PRICE_FIXTURES (yaml file)
//   - MARKET_CACHE_TTL (default: 1h; 0 disables caching)
//   - MARKET_QUOTES_TABLE (DynamoDB quote cache table; empty disables it)
//   - DEFAULT_MARGIN_PCT (default: 0.10, clamped to [0, 0.5])
type Config struct {
	Port int

	SerpAPIKey      string
	SerpAPIBaseURL  string
	ShoppingLang    string
	ShoppingCountry string

	LookupTimeout time.Duration
	LookupRPS     float64

	MarketPriceMock    bool
	MarketFixturesPath string
	MarketCacheTTL     time.Duration
	MarketQuotesTable  string
	DefaultMarginPct   float64
}

func Load() Config {
	cfg := Config{
		Port:               getenvInt("PORT", defaultPort),
		SerpAPIKey:         strings.TrimSpace(os.Getenv("SERPAPI_API_KEY")),
		SerpAPIBaseURL:     getenvDefault("SERPAPI_BASE_URL", defaultSerpAPIBaseURL),
		ShoppingLang:       defaultShoppingLanguage,
		ShoppingCountry:    defaultShoppingCountry,
		LookupTimeout:      getenvDuration("MARKET_LOOKUP_TIMEOUT", defaultLookupTimeout),
		LookupRPS:          getenvFloat("MARKET_LOOKUP_RPS", defaultLookupRPS),
		MarketPriceMock:    getenvBool("MARKET_PRICE_MOCK"),
		MarketFixturesPath: strings.TrimSpace(os.Getenv("MARKET_PRICE_FIXTURES")),
		MarketCacheTTL:     getenvDuration("MARKET_CACHE_TTL", defaultMarketCacheTTL),
		MarketQuotesTable:  strings.TrimSpace(os.Getenv("MARKET_QUOTES_TABLE")),
		DefaultMarginPct:   getenvFloat("DEFAULT_MARGIN_PCT", defaultMarginPct),
	}

	if cfg.DefaultMarginPct < 0 || cfg.DefaultMarginPct > maxPresentationMargin {
		log.Printf("[config] DEFAULT_MARGIN_PCT=%v out of range; using %.2f", cfg.DefaultMarginPct, defaultMarginPct)
		cfg.DefaultMarginPct = defaultMarginPct
	}
	if cfg.LookupRPS <= 0 {
		cfg.LookupRPS = defaultLookupRPS
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q; using %d", key, v, def)
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] invalid %s=%q; using %v", key, v, def)
		return def
	}
	return f
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q; using %s", key, v, def)
		return def
	}
	return d
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
