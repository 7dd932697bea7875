package collector

import (
	"math"
	"strconv"
	"strings"

	"github.com/guregu/null/v6"
	"github.com/tidwall/gjson"

	"TickerPane/internal/model"
)

// HistoryHeader is the first line of every history response.
const HistoryHeader = "Date,Open,High,Low,Close,Volume"

// ParseHistory locates the CSV header inside a provider or relay body and parses
// the rows after it. A body without the header yields ErrNoData.
func ParseHistory(body string) ([]model.PriceBar, error) {
	body = unwrapRelay(body, HistoryHeader)
	idx := strings.Index(body, HistoryHeader)
	if idx == -1 {
		return nil, ErrNoData
	}
	return ParseCSV(strings.TrimSpace(body[idx:])), nil
}

// ParseCSV parses "Date,Open,High,Low,Close,Volume" text. Malformed rows are
// skipped; an unparseable volume is kept as null. Row order is preserved and a
// repeated date keeps its first row.
func ParseCSV(text string) []model.PriceBar {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 3 {
		return []model.PriceBar{}
	}
	rows := make([]model.PriceBar, 0, len(lines)-1)
	seen := make(map[string]struct{}, len(lines)-1)
	for _, line := range lines[1:] {
		parts := strings.Split(line, ",")
		if len(parts) < 6 {
			continue
		}
		date := strings.TrimSpace(parts[0])
		if date == "" {
			continue
		}
		o, okO := parseFinite(parts[1])
		h, okH := parseFinite(parts[2])
		l, okL := parseFinite(parts[3])
		c, okC := parseFinite(parts[4])
		if !okO || !okH || !okL || !okC {
			continue
		}
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}

		bar := model.PriceBar{Date: date, Open: o, High: h, Low: l, Close: c}
		if v, ok := parseFinite(parts[5]); ok {
			bar.Volume = null.FloatFrom(v)
		}
		rows = append(rows, bar)
	}
	return rows
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// unwrapRelay returns the first JSON string value containing marker when a relay
// wrapped the upstream body in JSON; otherwise the body is returned unchanged.
func unwrapRelay(body, marker string) string {
	trimmed := strings.TrimSpace(body)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return body
	}
	if !gjson.Valid(trimmed) {
		return body
	}
	if found, ok := findString(gjson.Parse(trimmed), marker); ok {
		return found
	}
	return body
}

func findString(v gjson.Result, marker string) (string, bool) {
	switch {
	case v.Type == gjson.String:
		if strings.Contains(v.Str, marker) {
			return v.Str, true
		}
	case v.IsObject() || v.IsArray():
		var out string
		var ok bool
		v.ForEach(func(_, child gjson.Result) bool {
			out, ok = findString(child, marker)
			return !ok
		})
		return out, ok
	}
	return "", false
}
