package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"TickerPane/internal/api/handler/mocks"
	"TickerPane/internal/api/middleware"
	"TickerPane/internal/collector"
	"TickerPane/internal/model"
	"TickerPane/internal/prefs"
	"TickerPane/internal/search"
	"TickerPane/internal/widget"
)

func setupRouter(w WidgetItf) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.Use(middleware.Error())
	r.Use(middleware.Timeout(100 * time.Millisecond))

	hd := NewHandler(w, search.NewSessions(0))

	r.GET("/healthz", hd.Health)
	v1 := r.Group("/api/v1")
	{
		v1.GET("/view", hd.GetView)
		v1.GET("/quote", hd.GetQuote)
		v1.GET("/spark.svg", hd.GetSpark)
		v1.GET("/suggest", hd.GetSuggest)
		v1.GET("/favorites", hd.GetFavorites)
		v1.POST("/favorites", hd.PostFavorite)
		v1.DELETE("/favorites/:ticker", hd.DeleteFavorite)
		v1.GET("/key", hd.GetKey)
		v1.PUT("/key", hd.PutKey)
		v1.DELETE("/key", hd.DeleteKey)
	}
	return r
}

func TestIntegratedHandlers(t *testing.T) {
	view := model.View{
		Snapshot:  &model.Snapshot{Ticker: "aapl.us", Symbol: "AAPL"},
		Favorites: []string{"aapl.us"},
	}

	testCases := []struct {
		name                 string
		method               string
		url                  string
		body                 string
		setupMock            func(m *mocks.WidgetItf)
		expectedStatusCode   int
		expectedBodyContains string
	}{
		{
			name:                 "Success - health",
			method:               http.MethodGet,
			url:                  "/healthz",
			setupMock:            func(m *mocks.WidgetItf) {},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"status":"ok"`,
		},
		{
			name:   "Success - view",
			method: http.MethodGet,
			url:    "/api/v1/view",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("View").Return(view)
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"symbol":"AAPL"`,
		},
		{
			name:   "Success - quote loads the symbol",
			method: http.MethodGet,
			url:    "/api/v1/quote?t=aapl",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("Load", mock.Anything, "aapl").Return(view.Snapshot, nil)
				m.On("View").Return(view)
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"success":true`,
		},
		{
			name:   "Success - empty quote refreshes",
			method: http.MethodGet,
			url:    "/api/v1/quote",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("Refresh", mock.Anything).Return(view.Snapshot, nil)
				m.On("View").Return(view)
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"ticker":"aapl.us"`,
		},
		{
			name:   "Failure - invalid symbol",
			method: http.MethodGet,
			url:    "/api/v1/quote?t=%20",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("Load", mock.Anything, " ").Return(nil, collector.ErrEmptyInput)
			},
			expectedStatusCode:   http.StatusBadRequest,
			expectedBodyContains: "Type a ticker (AAPL) or search a company name.",
		},
		{
			name:   "Failure - company name without key",
			method: http.MethodGet,
			url:    "/api/v1/quote?t=apple+inc",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("Load", mock.Anything, "apple inc").Return(nil, collector.ErrNeedsLookupKey)
			},
			expectedStatusCode:   http.StatusBadRequest,
			expectedBodyContains: "needs an API key",
		},
		{
			name:   "Failure - provider down",
			method: http.MethodGet,
			url:    "/api/v1/quote?t=aapl",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("Load", mock.Anything, "aapl").Return(nil, collector.ErrFetchFailed)
			},
			expectedStatusCode:   http.StatusBadGateway,
			expectedBodyContains: "Couldn't load that symbol.",
		},
		{
			name:   "Failure - stale load",
			method: http.MethodGet,
			url:    "/api/v1/quote?t=aapl",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("Load", mock.Anything, "aapl").Return(nil, widget.ErrStale)
			},
			expectedStatusCode:   http.StatusConflict,
			expectedBodyContains: "a newer load replaced this one",
		},
		{
			name:   "Failure - load is too slow and times out",
			method: http.MethodGet,
			url:    "/api/v1/quote?t=slow",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("Load", mock.Anything, "slow").
					Run(func(args mock.Arguments) {
						<-args.Get(0).(context.Context).Done()
					}).
					Return(nil, context.DeadlineExceeded)
			},
			expectedStatusCode:   http.StatusGatewayTimeout,
			expectedBodyContains: "request timed out",
		},
		{
			name:   "Failure - unknown error",
			method: http.MethodGet,
			url:    "/api/v1/quote?t=aapl",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("Load", mock.Anything, "aapl").Return(nil, errors.New("a simulated error"))
			},
			expectedStatusCode:   http.StatusInternalServerError,
			expectedBodyContains: "a simulated error",
		},
		{
			name:   "Success - spark svg",
			method: http.MethodGet,
			url:    "/api/v1/spark.svg",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("View").Return(view)
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: "<svg",
		},
		{
			name:   "Success - suggest",
			method: http.MethodGet,
			url:    "/api/v1/suggest?q=tes&session=s1",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("Suggest", mock.Anything, mock.AnythingOfType("*search.Debouncer"), "tes").
					Return([]model.SearchResult{{Symbol: "TSLA", Name: "Tesla"}}, nil)
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"session":"s1","results":[{"symbol":"TSLA"`,
		},
		{
			name:                 "Failure - suggest without query",
			method:               http.MethodGet,
			url:                  "/api/v1/suggest",
			setupMock:            func(m *mocks.WidgetItf) {},
			expectedStatusCode:   http.StatusBadRequest,
			expectedBodyContains: `"field":"Query"`,
		},
		{
			name:   "Failure - superseded suggest",
			method: http.MethodGet,
			url:    "/api/v1/suggest?q=tes",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("Suggest", mock.Anything, mock.Anything, "tes").Return(nil, search.ErrSuperseded)
			},
			expectedStatusCode:   http.StatusConflict,
			expectedBodyContains: "a newer search replaced this one",
		},
		{
			name:   "Success - list favorites",
			method: http.MethodGet,
			url:    "/api/v1/favorites",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("Favorites").Return([]string{"aapl.us", "msft.us"})
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"favorites":["aapl.us","msft.us"]`,
		},
		{
			name:   "Success - save current",
			method: http.MethodPost,
			url:    "/api/v1/favorites",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("SaveCurrent").Return("aapl.us", true, nil)
				m.On("Favorites").Return([]string{"aapl.us"})
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"symbol":"AAPL","changed":true`,
		},
		{
			name:   "Success - save named symbol",
			method: http.MethodPost,
			url:    "/api/v1/favorites",
			body:   `{"symbol":"msft"}`,
			setupMock: func(m *mocks.WidgetItf) {
				m.On("SaveFavorite", "msft").Return("msft.us", false, nil)
				m.On("Favorites").Return([]string{"msft.us"})
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"changed":false`,
		},
		{
			name:   "Failure - save with nothing loaded",
			method: http.MethodPost,
			url:    "/api/v1/favorites",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("SaveCurrent").Return("", false, widget.ErrNothingLoaded)
			},
			expectedStatusCode:   http.StatusNotFound,
			expectedBodyContains: "Nothing loaded yet.",
		},
		{
			name:   "Success - remove favorite",
			method: http.MethodDelete,
			url:    "/api/v1/favorites/aapl.us",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("RemoveFavorite", "aapl.us").Return("aapl.us", true, nil)
				m.On("Favorites").Return([]string{})
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"changed":true,"favorites":[]`,
		},
		{
			name:   "Success - key presence",
			method: http.MethodGet,
			url:    "/api/v1/key",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("KeyPresent").Return(false)
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"present":false`,
		},
		{
			name:   "Success - save key",
			method: http.MethodPut,
			url:    "/api/v1/key",
			body:   `{"key":"abc"}`,
			setupMock: func(m *mocks.WidgetItf) {
				m.On("SetKey", "abc").Return(nil)
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"present":true`,
		},
		{
			name:   "Failure - blank key",
			method: http.MethodPut,
			url:    "/api/v1/key",
			body:   `{"key":"   "}`,
			setupMock: func(m *mocks.WidgetItf) {
				m.On("SetKey", "   ").Return(prefs.ErrEmptyKey)
			},
			expectedStatusCode:   http.StatusBadRequest,
			expectedBodyContains: "Usage: /key",
		},
		{
			name:   "Success - clear key",
			method: http.MethodDelete,
			url:    "/api/v1/key",
			setupMock: func(m *mocks.WidgetItf) {
				m.On("ClearKey").Return(nil)
			},
			expectedStatusCode:   http.StatusOK,
			expectedBodyContains: `"present":false`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			mockW := mocks.NewWidgetItf(t)
			tt.setupMock(mockW)
			router := setupRouter(mockW)

			w := httptest.NewRecorder()
			var req *http.Request
			if tt.body != "" {
				req, _ = http.NewRequest(tt.method, tt.url, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req, _ = http.NewRequest(tt.method, tt.url, nil)
			}

			// ACT
			router.ServeHTTP(w, req)

			// ASSERT
			assert.Equal(t, tt.expectedStatusCode, w.Code, "status code should match")
			assert.Contains(t, w.Body.String(), tt.expectedBodyContains, "response body should contain expected text")
		})
	}
}
