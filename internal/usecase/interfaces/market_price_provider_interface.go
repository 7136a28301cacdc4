package interfaces

import "context"

// IMarketPriceProvider abstracts the external shopping search used to price line items.
//
// Contract:
//   - Returns the observed positive prices and their reference links for a free-text query.
//   - Malformed upstream entries are skipped; they contribute neither a price nor a link.
//   - Never fails: an unreachable source or an empty answer yields empty slices.
//   - Each call may be billed by the upstream service.
type IMarketPriceProvider interface {
	Lookup(ctx context.Context, query string) (prices []float64, links []string)
}
