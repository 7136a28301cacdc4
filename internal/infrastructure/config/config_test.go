package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "SERPAPI_API_KEY", "SERPAPI_BASE_URL", "MARKET_LOOKUP_TIMEOUT", "MARKET_LOOKUP_RPS",
		"MARKET_PRICE_MOCK", "MARKET_PRICE_FIXTURES", "MARKET_CACHE_TTL", "MARKET_QUOTES_TABLE", "DEFAULT_MARGIN_PCT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.SerpAPIBaseURL != "https://serpapi.com/search.json" {
		t.Errorf("unexpected base url %s", cfg.SerpAPIBaseURL)
	}
	if cfg.LookupTimeout != 10*time.Second || cfg.MarketCacheTTL != time.Hour {
		t.Errorf("unexpected durations: %+v", cfg)
	}
	if cfg.DefaultMarginPct != 0.10 || cfg.LookupRPS != 5 {
		t.Errorf("unexpected numeric defaults: %+v", cfg)
	}
	if cfg.MarketPriceMock || cfg.MarketQuotesTable != "" {
		t.Errorf("expected mock and dynamodb cache disabled: %+v", cfg)
	}
	if cfg.ShoppingLang != "en" || cfg.ShoppingCountry != "us" {
		t.Errorf("expected US/English locale, got %s/%s", cfg.ShoppingLang, cfg.ShoppingCountry)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERPAPI_API_KEY", " key-123 ")
	t.Setenv("MARKET_LOOKUP_TIMEOUT", "3s")
	t.Setenv("MARKET_LOOKUP_RPS", "2.5")
	t.Setenv("MARKET_PRICE_MOCK", "yes")
	t.Setenv("MARKET_PRICE_FIXTURES", "fixtures/prices.yaml")
	t.Setenv("MARKET_CACHE_TTL", "0s")
	t.Setenv("MARKET_QUOTES_TABLE", "market_quotes")
	t.Setenv("DEFAULT_MARGIN_PCT", "0.2")

	cfg := Load()
	if cfg.Port != 9090 || cfg.SerpAPIKey != "key-123" {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.LookupTimeout != 3*time.Second || cfg.LookupRPS != 2.5 || cfg.MarketCacheTTL != 0 {
		t.Errorf("unexpected lookup settings: %+v", cfg)
	}
	if !cfg.MarketPriceMock || cfg.MarketFixturesPath != "fixtures/prices.yaml" || cfg.MarketQuotesTable != "market_quotes" {
		t.Errorf("unexpected market settings: %+v", cfg)
	}
	if cfg.DefaultMarginPct != 0.2 {
		t.Errorf("expected margin 0.2, got %v", cfg.DefaultMarginPct)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("MARKET_LOOKUP_TIMEOUT", "soon")
	t.Setenv("MARKET_LOOKUP_RPS", "-1")
	t.Setenv("DEFAULT_MARGIN_PCT", "0.9")

	cfg := Load()
	if cfg.Port != 8080 || cfg.LookupTimeout != 10*time.Second || cfg.LookupRPS != 5 || cfg.DefaultMarginPct != 0.10 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}
