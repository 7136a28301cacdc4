package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fleet_bill_verifier/internal/usecase/interfaces"

	"golang.org/x/time/rate"
)

var ErrMissingSerpAPIKey = errors.New("missing SERPAPI_API_KEY")

const maxSerpAPIResponseBytes = 4 << 20

// SerpAPIConfig configures the Google Shopping search client.
type SerpAPIConfig struct {
	APIKey     string
	BaseURL    string
	Language   string
	Country    string
	RPS        float64
	HTTPClient *http.Client
}

// SerpAPIProvider looks up market prices on Google Shopping through SerpAPI.
//
// Every request is billed by SerpAPI, so calls are throttled process-wide.
type SerpAPIProvider struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	language   string
	country    string
	limiter    *rate.Limiter
}

var _ interfaces.IMarketPriceProvider = (*SerpAPIProvider)(nil)

type serpAPIResponse struct {
	Error           string           `json:"error"`
	ShoppingResults []shoppingResult `json:"shopping_results"`
}

func NewSerpAPIProvider(cfg SerpAPIConfig) (*SerpAPIProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Printf("[market][serpapi] missing SERPAPI_API_KEY")
		return nil, ErrMissingSerpAPIKey
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	rps := cfg.RPS
	if rps <= 0 {
		rps = 5
	}
	log.Printf("[market][serpapi] client initialized base_url=%s hl=%s gl=%s rps=%.1f", cfg.BaseURL, cfg.Language, cfg.Country, rps)

	return &SerpAPIProvider{
		httpClient: client,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		language:   cfg.Language,
		country:    cfg.Country,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

func (p *SerpAPIProvider) Lookup(ctx context.Context, query string) ([]float64, []string) {
	if err := p.limiter.Wait(ctx); err != nil {
		log.Printf("[market][serpapi] rate limiter wait aborted query=%q err=%v", query, err)
		return []float64{}, []string{}
	}

	resp, err := p.search(ctx, query)
	if err != nil {
		log.Printf("[market][serpapi] search failed query=%q err=%v", query, err)
		return []float64{}, []string{}
	}
	if resp.Error != "" {
		log.Printf("[market][serpapi] search returned error query=%q error=%q", query, resp.Error)
	}

	prices, links := collectPrices(resp.ShoppingResults)
	log.Printf("[market][serpapi] search done query=%q results=%d prices=%d links=%d", query, len(resp.ShoppingResults), len(prices), len(links))
	return prices, links
}

func (p *SerpAPIProvider) search(ctx context.Context, query string) (serpAPIResponse, error) {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("tbm", "shop")
	params.Set("hl", p.language)
	params.Set("gl", p.country)
	params.Set("api_key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return serpAPIResponse{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := p.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL, api_key included.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return serpAPIResponse{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxSerpAPIResponseBytes))
	if err != nil {
		return serpAPIResponse{}, fmt.Errorf("failed to read response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return serpAPIResponse{}, fmt.Errorf("unexpected status %d: %s", res.StatusCode, truncate(string(body), 200))
	}

	var out serpAPIResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return serpAPIResponse{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
