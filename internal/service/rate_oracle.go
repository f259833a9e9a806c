package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"
	"github.com/androidmobilestore/mnw-wallet/internal/core/ports"
	"github.com/androidmobilestore/mnw-wallet/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RateOracleImpl implements ports.RateOracle. It serves quotes out of an
// in-memory cache that a background loop refreshes from the external feed.
// Refresh replaces the pair set wholesale; a failed fetch keeps the last good
// set so a flaky feed degrades quotes gracefully instead of dropping pairs
// one by one.
type RateOracleImpl struct {
	source ports.RateSource
	log    zerolog.Logger

	mu    sync.RWMutex
	quote domain.RateQuote
}

// NewRateOracle creates an oracle pre-seeded with pinned fallback rates, so
// quotes are available before the first successful fetch. The fallback set
// carries the construction timestamp: callers enforcing a staleness bound
// reject it once the feed has been unreachable for too long.
func NewRateOracle(source ports.RateSource, log zerolog.Logger) *RateOracleImpl {
	return &RateOracleImpl{
		source: source,
		log:    log,
		quote:  fallbackQuote(),
	}
}

func fallbackQuote() domain.RateQuote {
	return domain.RateQuote{
		Pairs: []domain.RatePair{
			{From: domain.CurrencyUSDT, To: domain.CurrencyRUB, Rate: decimal.RequireFromString("95.5")},
			{From: domain.CurrencyRUB, To: domain.CurrencyUSDT, Rate: decimal.RequireFromString("0.0104")},
			{From: domain.CurrencyTRX, To: domain.CurrencyRUB, Rate: decimal.RequireFromString("22.3")},
			{From: domain.CurrencyRUB, To: domain.CurrencyTRX, Rate: decimal.RequireFromString("0.0448")},
		},
		FetchedAt: time.Now().UTC(),
	}
}

// Quote returns the cached pair for a direction plus the fetch timestamp of
// the set it came from.
func (o *RateOracleImpl) Quote(from, to domain.Currency) (*domain.RatePair, time.Time, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	pair := o.quote.Find(from, to)
	if pair == nil {
		return nil, time.Time{}, apperror.ErrUnsupportedPair(string(from), string(to))
	}
	return pair, o.quote.FetchedAt, nil
}

// Refresh fetches the current pair set and swaps it in. On failure the cached
// set stays in place and the error is returned for the caller to log.
func (o *RateOracleImpl) Refresh(ctx context.Context) error {
	pairs, err := o.source.FetchPairs(ctx)
	if err != nil {
		return fmt.Errorf("fetch pairs: %w", err)
	}

	o.mu.Lock()
	o.quote = domain.RateQuote{Pairs: pairs, FetchedAt: time.Now().UTC()}
	o.mu.Unlock()

	o.log.Debug().Int("pairs", len(pairs)).Msg("rate cache refreshed")
	return nil
}

// Run refreshes the cache on a fixed interval until the context is cancelled.
// An immediate refresh runs first so the fallback rates are replaced as soon
// as the feed answers.
func (o *RateOracleImpl) Run(ctx context.Context, interval time.Duration) {
	if err := o.Refresh(ctx); err != nil {
		o.log.Warn().Err(err).Msg("initial rate refresh failed, serving fallback rates")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := o.Refresh(ctx); err != nil {
				o.log.Warn().Err(err).Msg("rate refresh failed, keeping cached rates")
			}
		}
	}
}
