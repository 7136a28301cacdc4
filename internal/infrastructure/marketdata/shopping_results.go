package marketdata

import (
	"strconv"
	"strings"

	"fleet_bill_verifier/internal/domain/entities"
)

// shoppingResult is one entry of a shopping search answer. Price is usually a
// currency-prefixed string ("$1,299.99") but upstream data is not trusted.
type shoppingResult struct {
	Price       any    `json:"price" yaml:"price"`
	Link        string `json:"link" yaml:"link"`
	ProductLink string `json:"product_link" yaml:"product_link"`
}

// collectPrices keeps entries with a usable positive price. A link is kept only
// for entries whose price was kept.
func collectPrices(results []shoppingResult) (prices []float64, links []string) {
	prices = []float64{}
	links = []string{}
	for _, r := range results {
		p, ok := parsePrice(r.Price)
		if !ok {
			continue
		}
		prices = append(prices, p)

		link := strings.TrimSpace(r.Link)
		if link == "" {
			link = strings.TrimSpace(r.ProductLink)
		}
		if link != "" {
			links = append(links, link)
		}
	}
	return prices, links
}

func parsePrice(raw any) (float64, bool) {
	var v float64
	switch p := raw.(type) {
	case string:
		s := strings.NewReplacer("$", "", ",", "").Replace(p)
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		v = f
	case float64:
		v = p
	case int:
		v = float64(p)
	default:
		return 0, false
	}
	if !entities.UsableAmount(v) {
		return 0, false
	}
	return v, true
}

// quoteKey normalizes a search query for caching and fixture matching.
func quoteKey(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}
