package interfaces

import (
	"context"
	"fleet_bill_verifier/internal/domain/entities"
)

// IMarketQuoteRepository abstracts DynamoDB persistence of cached market quotes.
//
// Get returns a zero MarketQuote (empty Query) when nothing is stored for the key.
type IMarketQuoteRepository interface {
	Get(ctx context.Context, query string) (entities.MarketQuote, error)
	Put(ctx context.Context, q entities.MarketQuote) error
}
