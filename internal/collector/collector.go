package collector

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/guregu/null/v6"

	"TickerPane/internal/calculator"
	"TickerPane/internal/model"
	"TickerPane/internal/symbol"
)

// MinSuggestLength is the shortest query sent to autocomplete.
const MinSuggestLength = 2

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.PriceBar
	Err   error

	mu    sync.Mutex
	calls []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, ticker string) ([]model.PriceBar, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ticker)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return generateMockBars(m.Price, 300), nil
}

// Calls returns the tickers requested so far.
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func generateMockBars(basePrice float64, count int) []model.PriceBar {
	bars := make([]model.PriceBar, count)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceBar{
			Date:   start.AddDate(0, 0, i).Format("2006-01-02"),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: null.FloatFrom(1000000),
		}
	}
	return bars
}

// MockMetadata is a MetadataProvider with canned answers.
type MockMetadata struct {
	Results []model.SearchResult
	Company *model.CompanyProfile
	Err     error

	mu       sync.Mutex
	profiled []string
}

func (m *MockMetadata) Name() string { return "mock" }

func (m *MockMetadata) Search(_ context.Context, _, _ string) ([]model.SearchResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Results) > MaxSearchResults {
		return m.Results[:MaxSearchResults], nil
	}
	return m.Results, nil
}

func (m *MockMetadata) Profile(_ context.Context, _, sym string) (*model.CompanyProfile, error) {
	m.mu.Lock()
	m.profiled = append(m.profiled, sym)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Company, nil
}

// Profiled returns the symbols passed to Profile so far.
func (m *MockMetadata) Profiled() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.profiled...)
}

// StaticKey is a KeySource holding a fixed key.
type StaticKey string

func (k StaticKey) Get() string { return strings.TrimSpace(string(k)) }

// Collector resolves user input to a ticker, fetches its history and optional
// profile, and computes the display metrics.
type Collector struct {
	History  HistoryFetcher
	Metadata MetadataProvider
	Keys     KeySource
}

// NewCollector creates a new Collector. metadata may be nil.
func NewCollector(history HistoryFetcher, metadata MetadataProvider, keys KeySource) *Collector {
	return &Collector{History: history, Metadata: metadata, Keys: keys}
}

func (c *Collector) lookupKey() string {
	if c.Keys == nil || c.Metadata == nil {
		return ""
	}
	return c.Keys.Get()
}

// Resolve turns user input into a ticker and the symbol used for profile lookups.
// Ticker-shaped input is used directly; anything else needs a lookup key and is
// resolved to the first search result, whose full symbol is kept for the profile.
func (c *Collector) Resolve(ctx context.Context, input string) (ticker, profileSymbol string, err error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return "", "", ErrEmptyInput
	}

	if !symbol.LooksLikeTicker(raw) {
		key := c.lookupKey()
		if key == "" {
			return "", "", ErrNeedsLookupKey
		}
		results, err := c.Metadata.Search(ctx, key, raw)
		if err != nil {
			return "", "", fmt.Errorf("resolve %q: %w", raw, err)
		}
		if len(results) == 0 {
			return "", "", ErrNoMatches
		}
		found := strings.ToUpper(strings.TrimSpace(results[0].Symbol))
		ticker, ok := symbol.Normalize(found)
		if !ok {
			return "", "", ErrInvalidSymbol
		}
		return ticker, found, nil
	}

	ticker, ok := symbol.Normalize(raw)
	if !ok {
		return "", "", ErrInvalidSymbol
	}
	return ticker, symbol.ToDisplay(ticker), nil
}

// Load runs one fetch → parse → compute pass for input.
func (c *Collector) Load(ctx context.Context, input string) (*model.Snapshot, error) {
	ticker, profileSymbol, err := c.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	return c.load(ctx, ticker, profileSymbol)
}

// LoadTicker loads an already-resolved provider ticker such as "reliance.ns"
// without running name resolution again. An empty profileSymbol falls back to
// the display symbol.
func (c *Collector) LoadTicker(ctx context.Context, ticker, profileSymbol string) (*model.Snapshot, error) {
	t, ok := symbol.Normalize(ticker)
	if !ok {
		return nil, ErrEmptyInput
	}
	if profileSymbol == "" {
		profileSymbol = symbol.ToDisplay(t)
	}
	return c.load(ctx, t, profileSymbol)
}

func (c *Collector) load(ctx context.Context, ticker, profileSymbol string) (*model.Snapshot, error) {
	bars, err := c.History.FetchHistory(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("fetch history %s: %w", ticker, ErrNoData)
	}

	snap := &model.Snapshot{
		Ticker:        ticker,
		Symbol:        symbol.ToDisplay(ticker),
		ProfileSymbol: profileSymbol,
		Last:          bars[len(bars)-1],
		Metrics:       calculator.Compute(bars),
		Bars:          len(bars),
		FetchedAt:     time.Now(),
	}

	if key := c.lookupKey(); key != "" {
		profile, err := c.Metadata.Profile(ctx, key, profileSymbol)
		if err != nil {
			log.Printf("[WARN] profile lookup for %s failed: %v", profileSymbol, err)
		}
		snap.Profile = profile
	}
	return snap, nil
}

// Suggest returns autocomplete candidates for a partially typed query.
func (c *Collector) Suggest(ctx context.Context, query string) ([]model.SearchResult, error) {
	key := c.lookupKey()
	if key == "" {
		return nil, ErrNeedsLookupKey
	}
	q := strings.TrimSpace(query)
	if len(q) < MinSuggestLength {
		return []model.SearchResult{}, nil
	}
	results, err := c.Metadata.Search(ctx, key, q)
	if err != nil {
		return nil, fmt.Errorf("suggest %q: %w", q, err)
	}
	return results, nil
}
