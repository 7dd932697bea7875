package calculator

import (
	"errors"

	"github.com/guregu/null/v6"

	"TickerPane/internal/model"
)

// Compute derives every display metric from an ascending bar series.
// Metrics that cannot be computed stay null.
func Compute(bars []model.PriceBar) model.Metrics {
	var m model.Metrics
	if len(bars) == 0 {
		return m
	}
	last := bars[len(bars)-1].Close
	m.LastClose = null.FloatFrom(last)

	chg, pct, err := CalculateChange(bars)
	switch {
	case err == nil:
		m.Change = null.FloatFrom(chg)
		m.ChangePct = null.FloatFrom(pct)
	case errors.Is(err, ErrZeroBase):
		m.Change = null.FloatFrom(chg)
	}

	if hi, lo, err := Calculate52WeekRange(bars); err == nil {
		m.High52w = null.FloatFrom(hi)
		m.Low52w = null.FloatFrom(lo)
		if pos, err := Calculate52WeekPosition(last, hi, lo); err == nil {
			m.RangePosition = null.FloatFrom(pos)
		}
	}

	if trend, err := CalculateTrend(bars); err == nil {
		m.Trend = trend
	}

	m.Spark = CalculateSparkline(bars)
	return m
}
