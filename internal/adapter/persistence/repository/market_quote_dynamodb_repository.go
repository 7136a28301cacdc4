package repository

import (
	"context"
	"strconv"
	"time"

	"fleet_bill_verifier/internal/domain/entities"
	"fleet_bill_verifier/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMarketQuotesTableName = "market_quotes"

type marketQuoteItem struct {
	Query     string   `dynamodbav:"query"`
	Prices    []string `dynamodbav:"prices"`
	Links     []string `dynamodbav:"links,omitempty"`
	FetchedAt string   `dynamodbav:"fetched_at"`
	ExpiresAt int64    `dynamodbav:"expires_at"`
}

// MarketQuoteDynamoRepository persists market quotes in DynamoDB so that every
// instance of the service shares one paid lookup per query.
//
// Table requirements:
//   - PK: query (string)
//   - TTL attribute: expires_at (number, epoch seconds)
//
// Prices are stored as decimal strings to avoid float formatting drift.
type MarketQuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMarketQuoteRepository = (*MarketQuoteDynamoRepository)(nil)

func NewMarketQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *MarketQuoteDynamoRepository {
	if tableName == "" {
		tableName = defaultMarketQuotesTableName
	}
	return &MarketQuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MarketQuoteDynamoRepository) Get(ctx context.Context, query string) (entities.MarketQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"query": &types.AttributeValueMemberS{Value: query},
		},
	})
	if err != nil {
		return entities.MarketQuote{}, err
	}
	if len(out.Item) == 0 {
		return entities.MarketQuote{}, nil
	}

	var it marketQuoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MarketQuote{}, err
	}
	return fromMarketQuoteItem(it), nil
}

// Put overwrites any previous quote for the same query.
func (r *MarketQuoteDynamoRepository) Put(ctx context.Context, q entities.MarketQuote) error {
	av, err := attributevalue.MarshalMap(toMarketQuoteItem(q))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toMarketQuoteItem(q entities.MarketQuote) marketQuoteItem {
	prices := make([]string, 0, len(q.Prices))
	for _, p := range q.Prices {
		prices = append(prices, floatToString(p))
	}
	return marketQuoteItem{
		Query:     q.Query,
		Prices:    prices,
		Links:     q.Links,
		FetchedAt: q.FetchedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt: q.ExpiresAt.Unix(),
	}
}

func fromMarketQuoteItem(it marketQuoteItem) entities.MarketQuote {
	fetchedAt, _ := time.Parse(time.RFC3339Nano, it.FetchedAt)
	prices := make([]float64, 0, len(it.Prices))
	for _, s := range it.Prices {
		if p, err := strconv.ParseFloat(s, 64); err == nil && p > 0 {
			prices = append(prices, p)
		}
	}
	links := it.Links
	if links == nil {
		links = []string{}
	}
	var expiresAt time.Time
	if it.ExpiresAt > 0 {
		expiresAt = time.Unix(it.ExpiresAt, 0).UTC()
	}
	return entities.MarketQuote{
		Query:     it.Query,
		Prices:    prices,
		Links:     links,
		FetchedAt: fetchedAt,
		ExpiresAt: expiresAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
