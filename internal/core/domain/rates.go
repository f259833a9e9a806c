package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RatePair is one directed quote between two currencies.
type RatePair struct {
	From      Currency
	To        Currency
	Rate      decimal.Decimal
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
}

// RateQuote is a cached set of pairwise rates with the time they were
// fetched. It lives in process memory only and is replaced wholesale on
// refresh; losing it on restart is acceptable since it is re-fetched.
type RateQuote struct {
	Pairs     []RatePair
	FetchedAt time.Time
}

// Find returns the directed pair, or nil when the direction is not quoted.
func (q *RateQuote) Find(from, to Currency) *RatePair {
	for i := range q.Pairs {
		if q.Pairs[i].From == from && q.Pairs[i].To == to {
			return &q.Pairs[i]
		}
	}
	return nil
}

// Age returns how stale the quote is at the given time.
func (q *RateQuote) Age(now time.Time) time.Duration {
	return now.Sub(q.FetchedAt)
}
