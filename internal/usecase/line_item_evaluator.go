package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"fleet_bill_verifier/internal/domain/entities"
	"fleet_bill_verifier/internal/usecase/interfaces"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	excessiveQuantityThreshold = 20
	itemsTotalTolerance        = 0.01
	maxReferenceLinks          = 3
	shoppingSearchBaseURL      = "https://www.google.com/search?tbm=shop&q="
	shoppingSearchLabel        = "Google Shopping Search"
)

var vagueDescriptionTokens = []string{"misc", "other", "unknown", "part", "item"}

// EvaluateLineItems judges every line item and aggregates the invoice.
//
// Rules run in order and the first one that fires decides the row:
// completeness, amount range, duplicate, vague description, quantity, market comparison.
// Only rows reaching the market comparison call the provider, once each.
// Rows are returned in input order.
func EvaluateLineItems(ctx context.Context, provider interfaces.IMarketPriceProvider, items []entities.LineItem, marginPct float64) ([]entities.EvaluatedRow, entities.InvoiceSummary) {
	dupCounts := make(map[entities.DuplicateKey]int, len(items))
	for _, it := range items {
		dupCounts[it.DuplicateKey()]++
	}

	rows := make([]entities.EvaluatedRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, evaluateLineItem(ctx, provider, it, dupCounts, marginPct))
	}
	return rows, AggregateInvoice(rows)
}

func evaluateLineItem(ctx context.Context, provider interfaces.IMarketPriceProvider, item entities.LineItem, dupCounts map[entities.DuplicateKey]int, marginPct float64) entities.EvaluatedRow {
	it := item.Normalized()
	row := entities.EvaluatedRow{
		LineItem:       it,
		ReferenceLinks: []entities.ReferenceLink{},
	}
	// Out-of-range costs add nothing to the bill; the total must stay finite.
	if math.Abs(it.Cost) <= entities.MaxUnitAmount {
		row.ItemsTotal = it.ItemsTotal()
	}

	switch {
	case it.Description == "" || it.Cost <= 0 || it.Quantity <= 0:
		row.Judge(entities.LineStatusRejected, entities.ReasonIncomplete,
			"Missing or zero values for description, quantity, or unit cost.")
		return row
	case !entities.UsableAmount(it.Cost):
		row.Judge(entities.LineStatusRejected, entities.ReasonAmountOutOfRange,
			fmt.Sprintf("Unit cost is not a plausible amount (maximum %s). Please check for typos.", formatMoney(entities.MaxUnitAmount)))
		return row
	case dupCounts[it.DuplicateKey()] > 1:
		row.Judge(entities.LineStatusCaution, entities.ReasonDuplicate,
			"Duplicate line detected (same Description, Type, and ATA Code). Please review or merge items.")
		return row
	case isVagueDescription(it.Description):
		row.Judge(entities.LineStatusCaution, entities.ReasonVagueDescription,
			"Description is unclear or vague. Please provide a standard part name.")
		return row
	case it.Quantity > excessiveQuantityThreshold:
		row.Judge(entities.LineStatusCaution, entities.ReasonExcessiveQuantity,
			fmt.Sprintf("Quantity %d is unusually high for a single invoice. Please verify fleet needs.", it.Quantity))
		return row
	}

	row.SearchQuery = BuildSearchQuery(it)
	prices, links := provider.Lookup(ctx, row.SearchQuery)
	compareWithMarket(&row, prices, marginPct)
	checkItemsTotal(&row)
	row.ReferenceLinks = BuildReferenceLinks(links, row.SearchQuery)
	return row
}

func isVagueDescription(desc string) bool {
	lower := strings.ToLower(desc)
	for _, token := range vagueDescriptionTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// BuildSearchQuery builds the shopping search query for a line item.
func BuildSearchQuery(it entities.LineItem) string {
	switch strings.ToLower(it.Type) {
	case "part":
		return fmt.Sprintf("%s %s part", it.Description, it.ATACode)
	case "labor":
		return fmt.Sprintf("%s %s labor %s %s", it.Description, it.ATACode, it.Correction, it.Cause)
	default:
		return fmt.Sprintf("%s %s %s", it.Description, it.Type, it.ATACode)
	}
}

func compareWithMarket(row *entities.EvaluatedRow, prices []float64, marginPct float64) {
	avgF, ok := MarketAverage(prices)
	if !ok {
		row.Judge(entities.LineStatusRejected, entities.ReasonNoMarketData,
			"No market price data found for this item. Please check the description or try a more common term.")
		return
	}

	avg := decimal.NewFromFloat(avgF)
	cost := decimal.NewFromFloat(row.Cost)
	allowed := avg.Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(marginPct)))
	marketTotal := avg.Mul(decimal.NewFromInt(int64(row.Quantity)))

	allowedF := allowed.InexactFloat64()
	marketTotalF := marketTotal.InexactFloat64()
	row.MarketAvg = &avgF
	row.AllowedUnitMax = &allowedF
	row.MarketAvgTotal = &marketTotalF

	switch {
	case cost.LessThanOrEqual(avg):
		row.Judge(entities.LineStatusApproved, entities.ReasonAtOrBelowMarket,
			fmt.Sprintf("Unit cost (%s) is at or below the market average (%s).", formatMoney(row.Cost), formatMoney(avgF)))
	case cost.LessThanOrEqual(allowed):
		row.Judge(entities.LineStatusCaution, entities.ReasonWithinMargin,
			fmt.Sprintf("Unit cost (%s) is above the market average (%s) but within the allowed threshold (%s).",
				formatMoney(row.Cost), formatMoney(avgF), formatMoney(allowedF)))
	default:
		row.Judge(entities.LineStatusRejected, entities.ReasonExceedsMargin,
			fmt.Sprintf("Unit cost (%s) exceeds the allowed maximum (%s) based on market average (%s).",
				formatMoney(row.Cost), formatMoney(allowedF), formatMoney(avgF)))
	}
}

// checkItemsTotal guards against a row whose ItemsTotal no longer matches Quantity x Cost.
// It overrides any earlier verdict.
func checkItemsTotal(row *entities.EvaluatedRow) {
	if math.Abs(row.ItemsTotal-float64(row.Quantity)*row.Cost) > itemsTotalTolerance {
		row.Judge(entities.LineStatusCaution, entities.ReasonItemsTotalMismatch,
			"Items total does not match Qty × Unit Cost. Please check for errors or inflation.")
	}
}

// BuildReferenceLinks keeps the first provider links as "Link N" and always appends
// the shopping search proof link for query.
func BuildReferenceLinks(links []string, query string) []entities.ReferenceLink {
	n := len(links)
	if n > maxReferenceLinks {
		n = maxReferenceLinks
	}
	out := make([]entities.ReferenceLink, 0, n+1)
	for i := 0; i < n; i++ {
		out = append(out, entities.ReferenceLink{Label: fmt.Sprintf("Link %d", i+1), URL: links[i]})
	}
	return append(out, entities.ReferenceLink{Label: shoppingSearchLabel, URL: ShoppingSearchURL(query)})
}

// ShoppingSearchURL is the public shopping search page for query, spaces as '+'.
func ShoppingSearchURL(query string) string {
	return shoppingSearchBaseURL + strings.ReplaceAll(query, " ", "+")
}

func formatMoney(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}
