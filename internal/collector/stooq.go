package collector

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/sync/singleflight"

	"TickerPane/internal/model"
)

// DefaultHistoryURL is the Stooq daily CSV download endpoint.
const DefaultHistoryURL = "https://stooq.com/q/d/l/"

// StooqFetcher implements HistoryFetcher using Stooq's daily CSV download.
type StooqFetcher struct {
	BaseURL   string
	Transport *Transport

	group singleflight.Group
}

// NewStooqFetcher creates a fetcher; an empty baseURL selects DefaultHistoryURL.
func NewStooqFetcher(baseURL string, transport *Transport) *StooqFetcher {
	if baseURL == "" {
		baseURL = DefaultHistoryURL
	}
	return &StooqFetcher{BaseURL: baseURL, Transport: transport}
}

func (f *StooqFetcher) Name() string { return "stooq" }

func (f *StooqFetcher) historyURL(ticker string) string {
	q := url.Values{}
	q.Set("s", ticker)
	q.Set("i", "d")
	return f.BaseURL + "?" + q.Encode()
}

// FetchHistory downloads the full daily history of ticker. Concurrent calls for
// the same ticker share one request. The shared request is detached from any
// single caller's cancellation; each caller still returns when its own ctx ends.
func (f *StooqFetcher) FetchHistory(ctx context.Context, ticker string) ([]model.PriceBar, error) {
	ch := f.group.DoChan(ticker, func() (any, error) {
		shared := context.WithoutCancel(ctx)
		body, err := f.Transport.FetchText(shared, f.historyURL(ticker))
		if err != nil {
			return nil, fmt.Errorf("stooq fetch %s: %w", ticker, err)
		}
		bars, err := ParseHistory(body)
		if err != nil {
			return nil, fmt.Errorf("stooq parse %s: %w", ticker, err)
		}
		return bars, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	bars := res.Val.([]model.PriceBar)
	out := make([]model.PriceBar, len(bars))
	copy(out, bars)
	return out, nil
}
