package marketdata

import (
	"context"
	"log"
	"time"

	"fleet_bill_verifier/internal/domain/entities"
	"fleet_bill_verifier/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
)

// CachedProvider avoids paying twice for the same search query.
//
// Lookup order: in-process cache, then the shared quote store (optional), then
// the wrapped provider. Empty answers are never cached, so a timeout or an outage
// does not stick.
type CachedProvider struct {
	next  interfaces.IMarketPriceProvider
	mem   *cache.Cache
	store interfaces.IMarketQuoteRepository
	ttl   time.Duration
	now   func() time.Time
}

var _ interfaces.IMarketPriceProvider = (*CachedProvider)(nil)

// NewCachedProvider wraps next. ttl must be positive; store may be nil.
func NewCachedProvider(next interfaces.IMarketPriceProvider, store interfaces.IMarketQuoteRepository, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next:  next,
		mem:   cache.New(ttl, 2*ttl),
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (p *CachedProvider) Lookup(ctx context.Context, query string) ([]float64, []string) {
	key := quoteKey(query)

	if v, ok := p.mem.Get(key); ok {
		q := v.(entities.MarketQuote)
		log.Printf("[market][cache] memory hit query=%q prices=%d", query, len(q.Prices))
		return q.Prices, q.Links
	}

	if p.store != nil {
		q, err := p.store.Get(ctx, key)
		switch {
		case err != nil:
			log.Printf("[market][cache] quote store get failed query=%q err=%v", query, err)
		case q.Query != "" && len(q.Prices) > 0 && !q.Expired(p.now()):
			log.Printf("[market][cache] store hit query=%q prices=%d", query, len(q.Prices))
			memTTL := cache.DefaultExpiration
			if !q.ExpiresAt.IsZero() {
				memTTL = q.ExpiresAt.Sub(p.now())
			}
			p.mem.Set(key, q, memTTL)
			return q.Prices, q.Links
		}
	}

	prices, links := p.next.Lookup(ctx, query)
	if len(prices) == 0 || ctx.Err() != nil {
		return prices, links
	}

	now := p.now().UTC()
	q := entities.MarketQuote{
		Query:     key,
		Prices:    prices,
		Links:     links,
		FetchedAt: now,
		ExpiresAt: now.Add(p.ttl),
	}
	p.mem.Set(key, q, cache.DefaultExpiration)
	if p.store != nil {
		if err := p.store.Put(ctx, q); err != nil {
			log.Printf("[market][cache] quote store put failed query=%q err=%v", query, err)
		}
	}
	return prices, links
}
