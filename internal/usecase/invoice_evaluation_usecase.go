package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"fleet_bill_verifier/internal/domain/entities"
	"fleet_bill_verifier/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNoLineItems                 = errors.New("invoice has no line items")
	ErrInvalidMarginPct            = errors.New("invalid margin pct")
	ErrMarketProviderNotConfigured = errors.New("market price provider not configured")
)

// IInvoiceEvaluationUseCase exposes invoice verification.
//
//   - Evaluate judges every line against market prices and aggregates the invoice.
//   - DemoLineItems returns a sample invoice for trying the service out.
type IInvoiceEvaluationUseCase interface {
	Evaluate(ctx context.Context, items []entities.LineItem, marginPct float64) (entities.InvoiceEvaluation, error)
	DemoLineItems() []entities.LineItem
}

type InvoiceEvaluationUseCase struct {
	provider      interfaces.IMarketPriceProvider
	lookupTimeout time.Duration
}

var _ IInvoiceEvaluationUseCase = (*InvoiceEvaluationUseCase)(nil)

// NewInvoiceEvaluationUseCase builds the use case. A lookupTimeout <= 0 disables the
// per-lookup deadline.
func NewInvoiceEvaluationUseCase(provider interfaces.IMarketPriceProvider, lookupTimeout time.Duration) *InvoiceEvaluationUseCase {
	return &InvoiceEvaluationUseCase{provider: provider, lookupTimeout: lookupTimeout}
}

func (u *InvoiceEvaluationUseCase) Evaluate(ctx context.Context, items []entities.LineItem, marginPct float64) (entities.InvoiceEvaluation, error) {
	log.Printf("[invoice][usecase] evaluate start items=%d margin_pct=%.2f", len(items), marginPct)
	if len(items) == 0 {
		return entities.InvoiceEvaluation{}, ErrNoLineItems
	}
	if math.IsNaN(marginPct) || marginPct < 0 || marginPct > 1 {
		log.Printf("[invoice][usecase] invalid margin_pct=%v", marginPct)
		return entities.InvoiceEvaluation{}, ErrInvalidMarginPct
	}
	if u.provider == nil {
		log.Printf("[invoice][usecase] market price provider not configured")
		return entities.InvoiceEvaluation{}, ErrMarketProviderNotConfigured
	}

	bounded := &boundedLookup{next: u.provider, timeout: u.lookupTimeout}
	rows, summary := EvaluateLineItems(ctx, bounded, items, marginPct)

	ev := entities.InvoiceEvaluation{
		ID:          uuid.NewString(),
		MarginPct:   marginPct,
		Rows:        rows,
		Summary:     summary,
		EvaluatedAt: time.Now().UTC(),
	}
	log.Printf("[invoice][usecase] evaluate success evaluation_id=%s lookups=%d approved=%d caution=%d rejected=%d total_bill=%.2f total_market_avg=%.2f flag=%s",
		ev.ID, bounded.calls, summary.ApprovedCount, summary.CautionCount, summary.RejectedCount, summary.TotalBill, summary.TotalMarketAvg, summary.GrandTotalFlag)
	return ev, nil
}

func (u *InvoiceEvaluationUseCase) DemoLineItems() []entities.LineItem {
	return DemoLineItems()
}

// boundedLookup gives every lookup its own deadline and turns a panicking provider
// into "no data" for that line only.
type boundedLookup struct {
	next    interfaces.IMarketPriceProvider
	timeout time.Duration
	calls   int
}

func (b *boundedLookup) Lookup(ctx context.Context, query string) (prices []float64, links []string) {
	b.calls++
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[invoice][usecase] market lookup panicked query=%q recovered=%v", query, r)
			prices, links = nil, nil
		}
	}()

	prices, links = b.next.Lookup(ctx, query)
	if err := ctx.Err(); err != nil {
		log.Printf("[invoice][usecase] market lookup aborted query=%q err=%v", query, err)
		return nil, nil
	}
	return prices, links
}
