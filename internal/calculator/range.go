package calculator

import (
	"errors"
	"math"

	"TickerPane/internal/model"
)

// TradingDaysPerYear is the window used for the 52-week range.
const TradingDaysPerYear = 252

// ErrFlatRange is returned when the 52-week high equals the low.
var ErrFlatRange = errors.New("52-week range is flat")

// Calculate52WeekRange scans the most recent 252 trading days and returns the high and low.
func Calculate52WeekRange(bars []model.PriceBar) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, errors.New("no daily bars provided")
	}
	n := len(bars)
	start := n - TradingDaysPerYear
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < n; i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}
	return high, low, nil
}

// Calculate52WeekPosition returns where the current price sits within the 52-week range,
// as a percentage (0 at the low, 100 at the high).
func Calculate52WeekPosition(current, high, low float64) (float64, error) {
	if high == low {
		return 0, ErrFlatRange
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	return (current - low) / (high - low) * 100, nil
}
