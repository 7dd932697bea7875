package collector

import (
	"context"

	"TickerPane/internal/model"
)

// HistoryFetcher loads the daily bar history of a normalized ticker.
type HistoryFetcher interface {
	FetchHistory(ctx context.Context, ticker string) ([]model.PriceBar, error)
	Name() string
}

// MetadataProvider looks up company names and profiles. Both calls need a key;
// malformed responses come back empty, only transport failures are errors.
type MetadataProvider interface {
	Search(ctx context.Context, key, query string) ([]model.SearchResult, error)
	Profile(ctx context.Context, key, symbol string) (*model.CompanyProfile, error)
	Name() string
}

// KeySource returns the stored lookup key, or "" when none is set.
type KeySource interface {
	Get() string
}
