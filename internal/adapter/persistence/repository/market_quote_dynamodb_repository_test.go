package repository

import (
	"testing"
	"time"

	"fleet_bill_verifier/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

func TestMarketQuoteItemRoundTrip(t *testing.T) {
	fetched := time.Date(2026, 10, 16, 9, 30, 0, 123, time.UTC)
	q := entities.MarketQuote{
		Query:     "brake caliper 01001065 part",
		Prices:    []float64{93.12, 1100},
		Links:     []string{"https://shop/1"},
		FetchedAt: fetched,
		ExpiresAt: fetched.Add(time.Hour).Truncate(time.Second),
	}

	it := toMarketQuoteItem(q)
	if it.Prices[0] != "93.12" || it.Prices[1] != "1100" {
		t.Fatalf("unexpected stored prices: %v", it.Prices)
	}
	if it.ExpiresAt != q.ExpiresAt.Unix() {
		t.Fatalf("expected epoch ttl, got %d", it.ExpiresAt)
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["expires_at"]; !ok {
		t.Fatalf("expected expires_at attribute, got %v", av)
	}

	var back marketQuoteItem
	if err := attributevalue.UnmarshalMap(av, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromMarketQuoteItem(back)
	if got.Query != q.Query || len(got.Prices) != 2 || got.Prices[0] != 93.12 || got.Prices[1] != 1100 {
		t.Fatalf("unexpected quote: %+v", got)
	}
	if !got.FetchedAt.Equal(fetched) || !got.ExpiresAt.Equal(q.ExpiresAt) {
		t.Fatalf("unexpected timestamps: %+v", got)
	}
}

func TestFromMarketQuoteItem_SkipsCorruptPrices(t *testing.T) {
	got := fromMarketQuoteItem(marketQuoteItem{Query: "q", Prices: []string{"10", "oops", "-1"}})
	if len(got.Prices) != 1 || got.Prices[0] != 10 {
		t.Fatalf("unexpected prices: %v", got.Prices)
	}
	if got.Links == nil || !got.ExpiresAt.IsZero() {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestNewMarketQuoteDynamoRepository_TableName(t *testing.T) {
	if r := NewMarketQuoteDynamoRepository(nil, ""); r.tableName != "market_quotes" {
		t.Fatalf("expected default table, got %s", r.tableName)
	}
	if r := NewMarketQuoteDynamoRepository(nil, "quotes_dev"); r.tableName != "quotes_dev" {
		t.Fatalf("expected explicit table, got %s", r.tableName)
	}
}
