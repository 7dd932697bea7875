package model

import (
	"time"

	"github.com/guregu/null/v6"
)

// PriceBar is one daily row from the history provider.
type PriceBar struct {
	Date   string     `json:"date"`
	Open   float64    `json:"open"`
	High   float64    `json:"high"`
	Low    float64    `json:"low"`
	Close  float64    `json:"close"`
	Volume null.Float `json:"volume"`
}

// CompanyProfile is best-effort metadata from the lookup provider.
type CompanyProfile struct {
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
}

// SearchResult is one candidate returned by a free-text lookup.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

// Snapshot is everything a single load produced.
type Snapshot struct {
	Seq    uint64 `json:"seq"`
	Ticker string `json:"ticker"`
	Symbol string `json:"symbol"`
	// ProfileSymbol is the metadata-provider symbol the profile was requested for.
	ProfileSymbol string          `json:"profile_symbol,omitempty"`
	Profile       *CompanyProfile `json:"profile,omitempty"`
	Last          PriceBar        `json:"last"`
	Metrics       Metrics         `json:"metrics"`
	Bars          int             `json:"bars"`
	FetchedAt     time.Time       `json:"fetched_at"`
}
