package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/androidmobilestore/mnw-wallet/config"
	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Feed pair symbols. The upstream quotes cash rubles and TRC-20 USDT under
// its own codes; TRX is quoted as-is.
const (
	symbolCashRUB = "CASHRUB"
	symbolUSDT    = "USDCTRC20"
	symbolTRX     = "TRX"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// FeedClient implements ports.RateSource against the public exchange feed.
// The feed quotes every city it operates in; only rows for the configured
// city are kept.
type FeedClient struct {
	httpClient HTTPClient
	feedURL    string
	city       string
	timeout    time.Duration
	log        zerolog.Logger
}

// NewFeedClient creates a rate source for the configured feed and city.
func NewFeedClient(httpClient HTTPClient, cfg config.RatesConfig, log zerolog.Logger) *FeedClient {
	return &FeedClient{
		httpClient: httpClient,
		feedURL:    cfg.FeedURL,
		city:       cfg.City,
		timeout:    cfg.RequestTimeout,
		log:        log,
	}
}

// feedItem is one row of the upstream feed. Numeric fields arrive as strings
// or numbers depending on the pair; decimal.Decimal accepts both.
type feedItem struct {
	City      string          `json:"city"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Out       decimal.Decimal `json:"out"`
	MinAmount decimal.Decimal `json:"minamount"`
	MaxAmount decimal.Decimal `json:"maxamount"`
}

// FetchPairs downloads the full feed and maps the configured city's rows to
// domain pairs. Directions the feed does not quote (crypto to crypto) are
// simply absent from the result.
func (c *FeedClient) FetchPairs(ctx context.Context) ([]domain.RatePair, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building rates request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching rates: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates feed returned status %d", resp.StatusCode)
	}

	var items []feedItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding rates feed: %w", err)
	}

	var pairs []domain.RatePair
	for _, item := range items {
		if item.City != c.city {
			continue
		}
		from, okFrom := mapSymbol(item.From)
		to, okTo := mapSymbol(item.To)
		if !okFrom || !okTo || item.Out.IsZero() {
			continue
		}
		pairs = append(pairs, domain.RatePair{
			From:      from,
			To:        to,
			Rate:      item.Out,
			MinAmount: item.MinAmount,
			MaxAmount: item.MaxAmount,
		})
	}

	if len(pairs) == 0 {
		return nil, fmt.Errorf("rates feed quoted no pairs for city %q", c.city)
	}

	c.log.Debug().Int("pairs", len(pairs)).Str("city", c.city).Msg("rates feed fetched")
	return pairs, nil
}

func mapSymbol(s string) (domain.Currency, bool) {
	switch s {
	case symbolCashRUB:
		return domain.CurrencyRUB, true
	case symbolUSDT:
		return domain.CurrencyUSDT, true
	case symbolTRX:
		return domain.CurrencyTRX, true
	}
	return "", false
}
