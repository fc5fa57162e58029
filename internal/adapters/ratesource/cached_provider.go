package ratesource

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fxlens/fxlens_backend/internal/core/ports"
	"github.com/fxlens/fxlens_backend/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// CachedProvider is a Redis read-through cache in front of another rate
// provider. Rates are stored as decimal strings with a TTL; cache failures
// are treated as misses so Redis being down never makes rates unavailable
// on its own.
type CachedProvider struct {
	inner  ports.RateProvider
	client *redis.Client
	ttl    time.Duration
}

// Ensure implementation matches interface
var _ ports.RateProvider = (*CachedProvider)(nil)

func NewCachedProvider(inner ports.RateProvider, client *redis.Client, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedProvider{inner: inner, client: client, ttl: ttl}
}

func rateKey(source, target string) string {
	return fmt.Sprintf("fx:rate:%s:%s", source, target)
}

// RateFor serves cached rates when present, falling through to the inner
// provider and caching its answer. Identity pairs never reach the cache or
// the inner provider's transport.
func (p *CachedProvider) RateFor(ctx context.Context, source, target string) (decimal.Decimal, error) {
	source = strings.ToUpper(source)
	target = strings.ToUpper(target)
	if source == target {
		return decimal.NewFromInt(1), nil
	}

	key := rateKey(source, target)
	if cached, err := p.client.Get(ctx, key).Result(); err == nil {
		if rate, perr := decimal.NewFromString(cached); perr == nil {
			metrics.RateCacheAccessTotal.WithLabelValues("hit").Inc()
			return rate, nil
		}
		// Unparseable entry: drop it and fall through.
		p.client.Del(ctx, key)
	}
	metrics.RateCacheAccessTotal.WithLabelValues("miss").Inc()

	rate, err := p.inner.RateFor(ctx, source, target)
	if err != nil {
		return decimal.Zero, err
	}

	// Best effort: a failed write only costs the next caller a miss.
	p.client.Set(ctx, key, rate.String(), p.ttl)

	return rate, nil
}
