package entities

import "time"

// MarketQuote is a cached answer of the market price provider for one search query.
//
// Storage model (DynamoDB):
//   - PK: query (normalized search query)
//   - TTL attribute: expires_at (epoch seconds)
type MarketQuote struct {
	Query     string    `json:"query"`
	Prices    []float64 `json:"prices"`
	Links     []string  `json:"links"`
	FetchedAt time.Time `json:"fetched_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the quote is past its expiry at now.
func (q MarketQuote) Expired(now time.Time) bool {
	return !q.ExpiresAt.IsZero() && !now.Before(q.ExpiresAt)
}
