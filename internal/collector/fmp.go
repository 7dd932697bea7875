package collector

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"TickerPane/internal/model"
)

const (
	// DefaultMetadataURL is the Financial Modeling Prep "stable" API root.
	DefaultMetadataURL = "https://financialmodelingprep.com/stable"
	// MaxSearchResults caps every search response.
	MaxSearchResults = 10
)

// FMPClient implements MetadataProvider against Financial Modeling Prep.
type FMPClient struct {
	baseURL    string
	httpClient HTTPClient
	transport  *Transport
}

// FMPClientOption is a configuration option for the FMP client.
type FMPClientOption func(*FMPClient)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) FMPClientOption {
	return func(c *FMPClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithHTTPClient sets the HTTP client used when no transport is given.
func WithHTTPClient(client HTTPClient) FMPClientOption {
	return func(c *FMPClient) {
		c.httpClient = client
	}
}

// WithTransport sets the transport used for requests.
func WithTransport(t *Transport) FMPClientOption {
	return func(c *FMPClient) {
		c.transport = t
	}
}

// NewFMPClient creates a metadata client. Without WithTransport it talks to the
// API directly with no relay.
func NewFMPClient(options ...FMPClientOption) *FMPClient {
	c := &FMPClient{baseURL: DefaultMetadataURL}
	for _, option := range options {
		option(c)
	}
	if c.transport == nil {
		if c.httpClient == nil {
			c.httpClient = NewHTTPClient("", 15*time.Second)
		}
		c.transport = NewTransport(c.httpClient, "")
	}
	return c
}

func (c *FMPClient) Name() string { return "fmp" }

func (c *FMPClient) endpoint(path string, q url.Values, key string) string {
	q.Set("apikey", key)
	return c.baseURL + "/" + path + "?" + q.Encode()
}

// Search runs a company-name search and keeps at most 10 entries that carry both
// a symbol and a name.
func (c *FMPClient) Search(ctx context.Context, key, query string) ([]model.SearchResult, error) {
	q := url.Values{}
	q.Set("query", query)
	body, err := c.transport.FetchText(ctx, c.endpoint("search-name", q, key))
	if err != nil {
		return nil, fmt.Errorf("fmp search: %w", err)
	}
	arr, ok := extractJSONArray(body)
	if !ok {
		return []model.SearchResult{}, nil
	}
	results := make([]model.SearchResult, 0, MaxSearchResults)
	arr.ForEach(func(_, item gjson.Result) bool {
		sym := strings.TrimSpace(item.Get("symbol").String())
		name := strings.TrimSpace(item.Get("name").String())
		if sym == "" || name == "" {
			return true
		}
		exchange := item.Get("exchangeShortName").String()
		if exchange == "" {
			exchange = item.Get("exchange").String()
		}
		results = append(results, model.SearchResult{Symbol: sym, Name: name, Exchange: exchange})
		return len(results) < MaxSearchResults
	})
	return results, nil
}

// Profile returns the first profile entry for symbol, or nil when the response
// is empty or malformed.
func (c *FMPClient) Profile(ctx context.Context, key, symbol string) (*model.CompanyProfile, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	body, err := c.transport.FetchText(ctx, c.endpoint("profile", q, key))
	if err != nil {
		return nil, fmt.Errorf("fmp profile: %w", err)
	}
	arr, ok := extractJSONArray(body)
	if !ok {
		return nil, nil
	}
	first := arr.Get("0")
	if !first.Exists() || !first.IsObject() {
		return nil, nil
	}
	return &model.CompanyProfile{
		Name:     first.Get("companyName").String(),
		Sector:   first.Get("sector").String(),
		Industry: first.Get("industry").String(),
	}, nil
}

// extractJSONArray finds the JSON array inside a possibly relay-framed body.
func extractJSONArray(body string) (gjson.Result, bool) {
	start := strings.Index(body, "[")
	if start == -1 {
		return gjson.Result{}, false
	}
	text := strings.TrimSpace(body[start:])
	if !gjson.Valid(text) {
		end := strings.LastIndex(text, "]")
		if end == -1 {
			return gjson.Result{}, false
		}
		text = text[:end+1]
		if !gjson.Valid(text) {
			return gjson.Result{}, false
		}
	}
	arr := gjson.Parse(text)
	if !arr.IsArray() {
		return gjson.Result{}, false
	}
	return arr, true
}
