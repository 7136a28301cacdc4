package marketdata

import (
	"context"
	"fmt"
	"log"
	"os"

	"fleet_bill_verifier/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

// FixtureProvider answers market lookups from a YAML file instead of the paid
// search API. It is used when MARKET_PRICE_MOCK is on.
//
// File layout:
//
//	quotes:
//	  - query: "A/C RECIEVER - DRYER 01001065 part"
//	    shopping_results:
//	      - price: "$90.00"
//	        link: "https://example.com/item"
type FixtureProvider struct {
	quotes map[string][]shoppingResult
}

var _ interfaces.IMarketPriceProvider = (*FixtureProvider)(nil)

type fixtureFile struct {
	Quotes []struct {
		Query           string           `yaml:"query"`
		ShoppingResults []shoppingResult `yaml:"shopping_results"`
	} `yaml:"quotes"`
}

// NewFixtureProvider loads fixtures from path. An empty path yields a provider
// that never finds prices.
func NewFixtureProvider(path string) (*FixtureProvider, error) {
	if path == "" {
		log.Printf("[market][fixture] no fixture file configured; every lookup returns no data")
		return &FixtureProvider{quotes: map[string][]shoppingResult{}}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read market fixtures: %w", err)
	}
	p, err := NewFixtureProviderFromYAML(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[market][fixture] loaded path=%s quotes=%d", path, len(p.quotes))
	return p, nil
}

func NewFixtureProviderFromYAML(data []byte) (*FixtureProvider, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse market fixtures: %w", err)
	}
	quotes := make(map[string][]shoppingResult, len(f.Quotes))
	for _, q := range f.Quotes {
		key := quoteKey(q.Query)
		quotes[key] = append(quotes[key], q.ShoppingResults...)
	}
	return &FixtureProvider{quotes: quotes}, nil
}

func (p *FixtureProvider) Lookup(ctx context.Context, query string) ([]float64, []string) {
	if ctx.Err() != nil {
		return []float64{}, []string{}
	}
	prices, links := collectPrices(p.quotes[quoteKey(query)])
	log.Printf("[market][fixture] lookup query=%q prices=%d", query, len(prices))
	return prices, links
}
