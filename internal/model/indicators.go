package model

import "github.com/guregu/null/v6"

// Trend classifies the last close against its 20-day simple moving average.
type Trend string

const (
	TrendUnknown Trend = ""
	TrendAbove   Trend = "above"
	TrendBelow   Trend = "below"
	TrendNear    Trend = "near"
)

// Point is one vertex of the sparkline.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sparkline is the recent closes mapped into a fixed drawing box.
type Sparkline struct {
	Points []Point `json:"points"`
	Path   string  `json:"path"`
}

// Metrics holds everything derived from a bar series. Null fields are undefined, not zero.
type Metrics struct {
	LastClose     null.Float `json:"last_close"`
	Change        null.Float `json:"change"`
	ChangePct     null.Float `json:"change_pct"`
	High52w       null.Float `json:"high_52w"`
	Low52w        null.Float `json:"low_52w"`
	RangePosition null.Float `json:"range_position"` // percent of the 52-week range
	Trend         Trend      `json:"trend"`
	Spark         Sparkline  `json:"spark"`
}
