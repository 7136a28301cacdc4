package usecase

import (
	"math"
	"testing"
)

func TestMarketAverage(t *testing.T) {
	t.Run("empty is no data", func(t *testing.T) {
		if _, ok := MarketAverage(nil); ok {
			t.Fatalf("expected no data for nil prices")
		}
		if _, ok := MarketAverage([]float64{}); ok {
			t.Fatalf("expected no data for empty prices")
		}
	})

	t.Run("arithmetic mean", func(t *testing.T) {
		avg, ok := MarketAverage([]float64{10, 20, 30})
		if !ok || avg != 20 {
			t.Fatalf("expected 20, got %v (ok=%v)", avg, ok)
		}
	})

	t.Run("low outlier pulls the average down", func(t *testing.T) {
		avg, ok := MarketAverage([]float64{100, 100, 100, 20})
		if !ok || avg != 80 {
			t.Fatalf("expected 80, got %v", avg)
		}
	})

	t.Run("cents do not drift", func(t *testing.T) {
		avg, _ := MarketAverage([]float64{0.1, 0.2})
		if avg != 0.15 {
			t.Fatalf("expected 0.15, got %v", avg)
		}
	})

	t.Run("unusable prices are skipped", func(t *testing.T) {
		avg, ok := MarketAverage([]float64{1e308, 40, math.NaN(), math.Inf(1), 0, -10, 60})
		if !ok || avg != 50 {
			t.Fatalf("expected 50, got %v (ok=%v)", avg, ok)
		}
		if _, ok := MarketAverage([]float64{1e308, math.Inf(1)}); ok {
			t.Fatalf("expected no data when every price is unusable")
		}
	})
}
