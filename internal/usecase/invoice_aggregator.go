package usecase

import (
	"math"

	"fleet_bill_verifier/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	moderateOveragePct = 10
	severeOveragePct   = 20
)

var grandTotalFlagMessages = map[entities.GrandTotalFlag]string{
	entities.GrandTotalFlagModerateOverage: "Invoice total is 10-20% higher than market average. Please review.",
	entities.GrandTotalFlagSevereOverage:   "Invoice total exceeds market average by more than 20%.",
}

// AggregateInvoice derives the invoice summary from evaluated rows.
//
// TotalBill includes every row, rejected ones too. TotalMarketAvg only includes rows
// that found a market average.
func AggregateInvoice(rows []entities.EvaluatedRow) entities.InvoiceSummary {
	totalBill := decimal.Zero
	totalMarket := decimal.Zero
	var s entities.InvoiceSummary

	for _, r := range rows {
		totalBill = totalBill.Add(finiteDecimal(r.ItemsTotal))
		if r.MarketAvgTotal != nil {
			totalMarket = totalMarket.Add(finiteDecimal(*r.MarketAvgTotal))
		}

		switch r.Status {
		case entities.LineStatusApproved:
			s.ApprovedCount++
		case entities.LineStatusCaution:
			s.CautionCount++
		case entities.LineStatusRejected:
			s.RejectedCount++
		}
	}

	s.TotalBill = totalBill.InexactFloat64()
	s.TotalMarketAvg = totalMarket.InexactFloat64()
	s.GrandTotalFlag, s.VariancePct = GrandTotalFlagFor(s.TotalBill, s.TotalMarketAvg)
	s.FlagMessage = grandTotalFlagMessages[s.GrandTotalFlag]
	return s
}

// GrandTotalFlagFor compares the invoice total with the market total. The variance
// percentage is nil when there is no market total to compare with.
func GrandTotalFlagFor(totalBill, totalMarketAvg float64) (entities.GrandTotalFlag, *float64) {
	if totalMarketAvg <= 0 || !isFinite(totalMarketAvg) || !isFinite(totalBill) {
		return entities.GrandTotalFlagNone, nil
	}

	market := decimal.NewFromFloat(totalMarketAvg)
	pct := decimal.NewFromFloat(totalBill).Sub(market).Div(market).Mul(decimal.NewFromInt(100))
	variance := pct.InexactFloat64()

	switch {
	case pct.GreaterThan(decimal.NewFromInt(severeOveragePct)):
		return entities.GrandTotalFlagSevereOverage, &variance
	case pct.GreaterThan(decimal.NewFromInt(moderateOveragePct)):
		return entities.GrandTotalFlagModerateOverage, &variance
	default:
		return entities.GrandTotalFlagNone, &variance
	}
}

// finiteDecimal counts a non-finite amount as zero; decimal cannot represent it.
func finiteDecimal(v float64) decimal.Decimal {
	if !isFinite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
