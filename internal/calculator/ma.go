package calculator

import (
	"errors"

	"github.com/markcheno/go-talib"

	"TickerPane/internal/model"
)

const (
	trendPeriod    = 20
	trendMinCloses = 25
	trendBand      = 0.02
)

// CalculateSMA computes the simple moving average of the trailing `period` prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	window := prices[len(prices)-period:]
	sma := talib.Sma(window, period)
	return sma[len(sma)-1], nil
}

// CalculateTrend compares the last close with its 20-day SMA.
// It needs at least 25 closes; within ±2% of the average the trend is "near".
func CalculateTrend(bars []model.PriceBar) (model.Trend, error) {
	if len(bars) < trendMinCloses {
		return model.TrendUnknown, errors.New("not enough closes for trend")
	}
	closes := extractCloses(bars)
	sma, err := CalculateSMA(closes, trendPeriod)
	if err != nil {
		return model.TrendUnknown, err
	}
	if sma == 0 {
		return model.TrendUnknown, errors.New("20-day average is zero")
	}
	last := closes[len(closes)-1]
	diff := (last - sma) / sma
	switch {
	case diff > trendBand:
		return model.TrendAbove, nil
	case diff < -trendBand:
		return model.TrendBelow, nil
	default:
		return model.TrendNear, nil
	}
}

func extractCloses(bars []model.PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
