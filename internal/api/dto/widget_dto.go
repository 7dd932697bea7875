package dto

import "TickerPane/internal/model"

// Res is the envelope of every JSON response.
type Res struct {
	Success bool `json:"success"`
	Error   any  `json:"error"`
	Data    any  `json:"data"`
}

type ErrorType struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Quote

type QuoteReq struct {
	Ticker string `form:"t"`
}

// Suggest

type SuggestReq struct {
	Query   string `form:"q" binding:"required"`
	Session string `form:"session"`
}

type SuggestRes struct {
	Session string               `json:"session"`
	Results []model.SearchResult `json:"results"`
}

// Favorites

type FavoriteReq struct {
	Symbol string `json:"symbol"`
}

type FavoriteRes struct {
	Ticker    string   `json:"ticker"`
	Symbol    string   `json:"symbol"`
	Changed   bool     `json:"changed"`
	Favorites []string `json:"favorites"`
}

type FavoritesRes struct {
	Favorites []string `json:"favorites"`
}

// Lookup key

type KeyReq struct {
	Key string `json:"key" binding:"required"`
}

type KeyRes struct {
	Present bool `json:"present"`
}
