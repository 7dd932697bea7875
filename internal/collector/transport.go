package collector

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=collector_test -destination=mock_http_client_test.go -source=transport.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient builds a client with an optional proxy.
func NewHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

// Transport fetches text directly and, if that fails, once more through a
// CORS-bypass relay that takes the upstream URL as a path suffix.
type Transport struct {
	Client    HTTPClient
	RelayURL  string
	UserAgent string
}

// NewTransport creates a Transport. An empty relayURL disables the fallback.
func NewTransport(client HTTPClient, relayURL string) *Transport {
	return &Transport{Client: client, RelayURL: relayURL, UserAgent: "Mozilla/5.0 (TickerPane)"}
}

// FetchText returns the body of target. Any failure of both paths wraps ErrFetchFailed.
func (t *Transport) FetchText(ctx context.Context, target string) (string, error) {
	body, err := t.get(ctx, target)
	if err == nil {
		return body, nil
	}
	if t.RelayURL == "" {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	log.Printf("[WARN] direct fetch from %s failed: %v, retrying via relay", hostOf(target), err)

	body, relayErr := t.get(ctx, t.relayed(target))
	if relayErr != nil {
		return "", fmt.Errorf("%w: direct: %v; relay: %v", ErrFetchFailed, err, relayErr)
	}
	return body, nil
}

func (t *Transport) relayed(target string) string {
	return strings.TrimSuffix(t.RelayURL, "/") + "/" + target
}

func (t *Transport) get(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	if t.UserAgent != "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", redact(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	return string(body), nil
}

// hostOf keeps query strings, which may carry the lookup key, out of logs.
func hostOf(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return "upstream"
	}
	return u.Host
}

// redact strips the URL from *url.Error so the lookup key is never logged.
func redact(err error) error {
	if ue, ok := err.(*url.Error); ok {
		return fmt.Errorf("%s %s: %w", ue.Op, hostOf(ue.URL), ue.Err)
	}
	return err
}
