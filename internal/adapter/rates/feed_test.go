package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/androidmobilestore/mnw-wallet/config"
	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedBody = `[
	{"city":"nnov","from":"CASHRUB","to":"USDCTRC20","out":"0.0125","minamount":150000,"maxamount":80000000},
	{"city":"nnov","from":"USDCTRC20","to":"CASHRUB","out":"80.0","minamount":1500,"maxamount":1000000},
	{"city":"nnov","from":"CASHRUB","to":"TRX","out":"0.0445","minamount":150000,"maxamount":80000000},
	{"city":"nnov","from":"TRX","to":"CASHRUB","out":"21.5","minamount":5500,"maxamount":3300000},
	{"city":"msk","from":"CASHRUB","to":"USDCTRC20","out":"0.0126","minamount":150000,"maxamount":80000000},
	{"city":"nnov","from":"BTC","to":"CASHRUB","out":"5000000","minamount":1,"maxamount":10}
]`

func newFeedClient(t *testing.T, handler http.HandlerFunc) *FeedClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.RatesConfig{FeedURL: srv.URL, City: "nnov"}
	return NewFeedClient(srv.Client(), cfg, zerolog.Nop())
}

func TestFeedClient_FetchPairs(t *testing.T) {
	client := newFeedClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedBody))
	})

	pairs, err := client.FetchPairs(context.Background())
	require.NoError(t, err)
	// Other cities and unknown symbols are dropped.
	require.Len(t, pairs, 4)

	var rubToUSDT *domain.RatePair
	for i := range pairs {
		if pairs[i].From == domain.CurrencyRUB && pairs[i].To == domain.CurrencyUSDT {
			rubToUSDT = &pairs[i]
		}
	}
	require.NotNil(t, rubToUSDT)
	assert.Equal(t, "0.0125", rubToUSDT.Rate.String())
	assert.Equal(t, "150000", rubToUSDT.MinAmount.String())
}

func TestFeedClient_FetchPairs_NoCityRows(t *testing.T) {
	client := newFeedClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"city":"msk","from":"TRX","to":"CASHRUB","out":"21.5"}]`))
	})

	_, err := client.FetchPairs(context.Background())
	assert.Error(t, err)
}

func TestFeedClient_FetchPairs_UpstreamError(t *testing.T) {
	client := newFeedClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchPairs(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFeedClient_FetchPairs_RequestTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	cfg := config.RatesConfig{
		FeedURL:        srv.URL,
		City:           "nnov",
		RequestTimeout: 50 * time.Millisecond,
	}
	client := NewFeedClient(srv.Client(), cfg, zerolog.Nop())

	start := time.Now()
	_, err := client.FetchPairs(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}
