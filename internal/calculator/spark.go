package calculator

import (
	"fmt"
	"strings"

	"TickerPane/internal/model"
)

// Sparkline drawing box.
const (
	SparkWidth  = 200.0
	SparkHeight = 60.0
	SparkPad    = 4.0
	SparkWindow = 60
)

// SparkPoints maps values onto the drawing box with min-max scaling. Fewer than
// two values produce no points. A flat series is drawn as a horizontal line.
func SparkPoints(values []float64) []model.Point {
	if len(values) < 2 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	xStep := (SparkWidth - SparkPad*2) / float64(len(values)-1)
	points := make([]model.Point, len(values))
	for i, v := range values {
		points[i] = model.Point{
			X: SparkPad + float64(i)*xStep,
			Y: SparkPad + (SparkHeight-SparkPad*2)*(1-(v-lo)/span),
		}
	}
	return points
}

// SparkPath renders points as an SVG path ("M x y L x y ...").
func SparkPath(points []model.Point) string {
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			fmt.Fprintf(&b, "M %.2f %.2f", p.X, p.Y)
			continue
		}
		fmt.Fprintf(&b, " L %.2f %.2f", p.X, p.Y)
	}
	return b.String()
}

// CalculateSparkline draws the trailing 60 closes.
func CalculateSparkline(bars []model.PriceBar) model.Sparkline {
	start := len(bars) - SparkWindow
	if start < 0 {
		start = 0
	}
	points := SparkPoints(extractCloses(bars[start:]))
	return model.Sparkline{Points: points, Path: SparkPath(points)}
}
