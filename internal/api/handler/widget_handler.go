package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"TickerPane/internal/api/dto"
	"TickerPane/internal/model"
	"TickerPane/internal/notifier"
	"TickerPane/internal/search"
	"TickerPane/internal/symbol"
)

// WidgetItf is the widget controller as seen by the HTTP layer.
type WidgetItf interface {
	Load(ctx context.Context, input string) (*model.Snapshot, error)
	Refresh(ctx context.Context) (*model.Snapshot, error)
	View() model.View
	SaveCurrent() (string, bool, error)
	SaveFavorite(input string) (string, bool, error)
	RemoveFavorite(input string) (string, bool, error)
	Favorites() []string
	SetKey(key string) error
	ClearKey() error
	KeyPresent() bool
	Suggest(ctx context.Context, d *search.Debouncer, query string) ([]model.SearchResult, error)
}

type HandlerItf interface {
	Health(*gin.Context)
	GetView(*gin.Context)
	GetQuote(*gin.Context)
	GetSpark(*gin.Context)
	GetSuggest(*gin.Context)
	GetFavorites(*gin.Context)
	PostFavorite(*gin.Context)
	DeleteFavorite(*gin.Context)
	GetKey(*gin.Context)
	PutKey(*gin.Context)
	DeleteKey(*gin.Context)
}

type Handler struct {
	w        WidgetItf
	sessions *search.Sessions
}

func NewHandler(w WidgetItf, sessions *search.Sessions) *Handler {
	return &Handler{w: w, sessions: sessions}
}

func ok(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, dto.Res{Success: true, Data: data})
}

func (hd *Handler) Health(ctx *gin.Context) {
	ok(ctx, gin.H{"status": "ok"})
}

func (hd *Handler) GetView(ctx *gin.Context) {
	ok(ctx, hd.w.View())
}

func (hd *Handler) GetQuote(ctx *gin.Context) {
	var req dto.QuoteReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.Error(err)
		return
	}

	var err error
	if req.Ticker == "" {
		_, err = hd.w.Refresh(ctx.Request.Context())
	} else {
		_, err = hd.w.Load(ctx.Request.Context(), req.Ticker)
	}
	if err != nil {
		ctx.Error(err)
		return
	}
	ok(ctx, hd.w.View())
}

func (hd *Handler) GetSpark(ctx *gin.Context) {
	ctx.Header("Cache-Control", "no-store")
	ctx.Data(http.StatusOK, "image/svg+xml", []byte(notifier.SparkSVG(hd.w.View().Snapshot)))
}

func (hd *Handler) GetSuggest(ctx *gin.Context) {
	var req dto.SuggestReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.Error(err)
		return
	}

	session, d := hd.sessions.Get(req.Session)
	results, err := hd.w.Suggest(ctx.Request.Context(), d, req.Query)
	if err != nil {
		ctx.Error(err)
		return
	}
	if results == nil {
		results = []model.SearchResult{}
	}
	ok(ctx, dto.SuggestRes{Session: session, Results: results})
}

func (hd *Handler) GetFavorites(ctx *gin.Context) {
	ok(ctx, dto.FavoritesRes{Favorites: hd.w.Favorites()})
}

func (hd *Handler) PostFavorite(ctx *gin.Context) {
	var req dto.FavoriteReq
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			ctx.Error(err)
			return
		}
	}

	var (
		ticker string
		added  bool
		err    error
	)
	if req.Symbol == "" {
		ticker, added, err = hd.w.SaveCurrent()
	} else {
		ticker, added, err = hd.w.SaveFavorite(req.Symbol)
	}
	if err != nil {
		ctx.Error(err)
		return
	}
	ok(ctx, dto.FavoriteRes{
		Ticker:    ticker,
		Symbol:    symbol.ToDisplay(ticker),
		Changed:   added,
		Favorites: hd.w.Favorites(),
	})
}

func (hd *Handler) DeleteFavorite(ctx *gin.Context) {
	ticker, removed, err := hd.w.RemoveFavorite(ctx.Param("ticker"))
	if err != nil {
		ctx.Error(err)
		return
	}
	ok(ctx, dto.FavoriteRes{
		Ticker:    ticker,
		Symbol:    symbol.ToDisplay(ticker),
		Changed:   removed,
		Favorites: hd.w.Favorites(),
	})
}

func (hd *Handler) GetKey(ctx *gin.Context) {
	ok(ctx, dto.KeyRes{Present: hd.w.KeyPresent()})
}

func (hd *Handler) PutKey(ctx *gin.Context) {
	var req dto.KeyReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(err)
		return
	}
	if err := hd.w.SetKey(req.Key); err != nil {
		ctx.Error(err)
		return
	}
	ok(ctx, dto.KeyRes{Present: true})
}

func (hd *Handler) DeleteKey(ctx *gin.Context) {
	if err := hd.w.ClearKey(); err != nil {
		ctx.Error(err)
		return
	}
	ok(ctx, dto.KeyRes{Present: false})
}
