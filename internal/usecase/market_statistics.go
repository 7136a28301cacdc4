package usecase

import (
	"fleet_bill_verifier/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MarketAverage returns the arithmetic mean of prices. Prices that are not usable
// amounts are skipped; ok is false when none remain.
//
// The mean is used on purpose instead of the median: low-ball listings pull the
// average down rather than being discarded.
func MarketAverage(prices []float64) (avg float64, ok bool) {
	sum := decimal.Zero
	n := 0
	for _, p := range prices {
		if !entities.UsableAmount(p) {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(p))
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum.Div(decimal.NewFromInt(int64(n))).InexactFloat64(), true
}
