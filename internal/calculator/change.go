package calculator

import (
	"errors"

	"TickerPane/internal/model"
)

// ErrZeroBase is returned with a valid change when the previous close is zero.
var ErrZeroBase = errors.New("previous close is zero")

// CalculateChange returns the day-over-day change of the last close and the
// same change as a fraction of the previous close.
func CalculateChange(bars []model.PriceBar) (change, pct float64, err error) {
	n := len(bars)
	if n < 2 {
		return 0, 0, errors.New("need two bars for change")
	}
	prev := bars[n-2].Close
	change = bars[n-1].Close - prev
	if prev == 0 {
		return change, 0, ErrZeroBase
	}
	return change, change / prev, nil
}
