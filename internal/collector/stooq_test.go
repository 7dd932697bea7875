package collector_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"TickerPane/internal/collector"
)

const sampleCSV = "Date,Open,High,Low,Close,Volume\n" +
	"2024-01-02,10,12,9,11,1000\n" +
	"2024-01-03,11,13,10,12,2000\n"

func TestStooqFetcher_FetchHistory(t *testing.T) {
	t.Parallel()

	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "aapl.us", r.URL.Query().Get("s"))
		require.Equal(t, "d", r.URL.Query().Get("i"))
		fmt.Fprint(w, sampleCSV)
	}))
	defer srv.Close()
	tr := collector.NewTransport(collector.NewHTTPClient("", 5*time.Second), "")
	f := collector.NewStooqFetcher(srv.URL+"/q/d/l/", tr)

	// Act
	bars, err := f.FetchHistory(t.Context(), "aapl.us")

	// Assert
	require.NoError(t, err)
	require.Len(t, bars, 2)
	require.Equal(t, "2024-01-03", bars[1].Date)
	require.Equal(t, "stooq", f.Name())
}

func TestStooqFetcher_RelayFallback(t *testing.T) {
	t.Parallel()

	// Arrange
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer direct.Close()
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Title: relayed %s\n\n%s", r.URL.Path, sampleCSV)
	}))
	defer relay.Close()
	tr := collector.NewTransport(collector.NewHTTPClient("", 5*time.Second), relay.URL)
	f := collector.NewStooqFetcher(direct.URL+"/q/d/l/", tr)

	// Act
	bars, err := f.FetchHistory(t.Context(), "msft.us")

	// Assert
	require.NoError(t, err)
	require.Len(t, bars, 2)
}

func TestStooqFetcher_NoData(t *testing.T) {
	t.Parallel()

	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "No data")
	}))
	defer srv.Close()
	tr := collector.NewTransport(collector.NewHTTPClient("", 5*time.Second), "")
	f := collector.NewStooqFetcher(srv.URL, tr)

	// Act
	_, err := f.FetchHistory(t.Context(), "zzzz.us")

	// Assert
	require.ErrorIs(t, err, collector.ErrNoData)
}

func TestStooqFetcher_SharedFetchOutlivesCanceledCaller(t *testing.T) {
	t.Parallel()

	// Arrange
	var hits atomic.Int32
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	var once sync.Once
	releaseAll := func() { once.Do(func() { close(release) }) }
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		fmt.Fprint(w, sampleCSV)
	}))
	defer srv.Close()
	defer releaseAll()
	tr := collector.NewTransport(collector.NewHTTPClient("", 5*time.Second), "")
	f := collector.NewStooqFetcher(srv.URL+"/q/d/l/", tr)

	firstCtx, cancelFirst := context.WithCancel(t.Context())
	defer cancelFirst()
	firstErr := make(chan error, 1)
	go func() {
		_, err := f.FetchHistory(firstCtx, "aapl.us")
		firstErr <- err
	}()
	<-started
	time.AfterFunc(50*time.Millisecond, cancelFirst)
	time.AfterFunc(100*time.Millisecond, releaseAll)

	// Act
	bars, err := f.FetchHistory(t.Context(), "aapl.us")

	// Assert
	require.NoError(t, err)
	require.Len(t, bars, 2)
	require.ErrorIs(t, <-firstErr, context.Canceled)
	require.Equal(t, int32(1), hits.Load())
}
