package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TickerPane/internal/api/dto"
	"TickerPane/internal/api/handler"
	"TickerPane/internal/collector"
	"TickerPane/internal/prefs"
	"TickerPane/internal/search"
	"TickerPane/internal/store"
	"TickerPane/internal/widget"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := store.NewMemoryStore()
	keys := prefs.NewKeyStore(s)
	col := collector.NewCollector(&collector.MockFetcher{Price: 150}, &collector.MockMetadata{}, keys)
	w := widget.New(col, prefs.NewFavorites(s), keys, "AAPL")
	return NewRouter(handler.NewHandler(w, search.NewSessions(0)), time.Second)
}

func do(t *testing.T, r *gin.Engine, method, url, body string) (*httptest.ResponseRecorder, dto.Res) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var res dto.Res
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func TestRouter_LoadSaveFlow(t *testing.T) {
	r := newTestRouter(t)

	rec, res := do(t, r, http.MethodGet, "/api/v1/quote?t=tsla", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, res.Success)

	rec, _ = do(t, r, http.MethodPost, "/api/v1/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"favorites":["tsla.us"]`)

	rec, _ = do(t, r, http.MethodGet, "/api/v1/spark.svg", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<path")

	rec, _ = do(t, r, http.MethodDelete, "/api/v1/favorites/TSLA", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorites":[]`)
}

func TestRouter_KeyFlow(t *testing.T) {
	r := newTestRouter(t)

	rec, _ := do(t, r, http.MethodGet, "/api/v1/suggest?q=tesla", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, r, http.MethodPut, "/api/v1/key", `{"key":"abc"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, res := do(t, r, http.MethodGet, "/api/v1/suggest?q=tesla", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := res.Data.(map[string]any)
	assert.NotEmpty(t, data["session"])

	rec, _ = do(t, r, http.MethodGet, "/api/v1/quote?t=no+such+company", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, r, http.MethodDelete, "/api/v1/key", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, r, http.MethodGet, "/api/v1/key", "")
	assert.Contains(t, rec.Body.String(), `"present":false`)
}

func TestRouter_Health(t *testing.T) {
	rec, res := do(t, newTestRouter(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, res.Success)
}
