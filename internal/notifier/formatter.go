package notifier

import (
	"fmt"
	"html"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"

	"TickerPane/internal/calculator"
	"TickerPane/internal/model"
	"TickerPane/internal/symbol"
)

// Placeholder is shown for any value that could not be computed.
const Placeholder = "—"

const (
	tipNoKey = "Tip: save a lookup key with /key to enable company search and sector/industry. Prices still work without it."
	tipKey   = "Tip: send a ticker or company name, then /save to add it to favorites."
	hint     = "Type a ticker (AAPL) or search a company name."
)

// FormatView renders the widget card as Telegram HTML.
func FormatView(v model.View) string {
	var b strings.Builder

	snap := v.Snapshot
	if snap == nil {
		b.WriteString("📈 <b>TickerPane</b>\n\n")
		if v.Status != "" {
			b.WriteString(html.EscapeString(v.Status) + "\n")
		} else {
			b.WriteString(hint + "\n")
		}
		b.WriteString("\n" + tip(v.KeyPresent))
		return b.String()
	}

	// Header
	b.WriteString(fmt.Sprintf("📈 <b>%s</b>", html.EscapeString(snap.Symbol)))
	if snap.Profile != nil && snap.Profile.Name != "" {
		b.WriteString(" · " + html.EscapeString(snap.Profile.Name))
	}
	b.WriteString("\n")
	lastDate := snap.Last.Date
	if lastDate == "" {
		lastDate = Placeholder
	}
	b.WriteString(fmt.Sprintf("Updated: %s • Last data: %s\n", snap.FetchedAt.Format("Mon 3:04 PM"), lastDate))
	sector, industry := Placeholder, Placeholder
	if snap.Profile != nil {
		sector = orPlaceholder(snap.Profile.Sector)
		industry = orPlaceholder(snap.Profile.Industry)
	}
	b.WriteString(fmt.Sprintf("Sector: %s | Industry: %s\n\n", html.EscapeString(sector), html.EscapeString(industry)))

	// Last session
	m := snap.Metrics
	b.WriteString(fmt.Sprintf("Price: <b>%s</b>\n", dollars(m.LastClose)))
	b.WriteString(fmt.Sprintf("Change: %s\n", FormatChange(m.Change, m.ChangePct)))
	b.WriteString(fmt.Sprintf("Open: %s | High: %s | Low: %s\n",
		dollars(null.FloatFrom(snap.Last.Open)), dollars(null.FloatFrom(snap.Last.High)), dollars(null.FloatFrom(snap.Last.Low))))
	b.WriteString(fmt.Sprintf("Volume: %s\n\n", FormatVolume(snap.Last.Volume)))

	// 52 weeks and trend
	b.WriteString(fmt.Sprintf("52W High: %s | 52W Low: %s\n", dollars(m.High52w), dollars(m.Low52w)))
	b.WriteString(fmt.Sprintf("Range: %s\n", FormatRange(m.RangePosition)))
	b.WriteString(fmt.Sprintf("Trend: %s\n", TrendLabel(m.Trend)))
	if n := len(m.Spark.Points); n > 0 {
		b.WriteString(fmt.Sprintf("Spark: last %d closes\n", n))
	}

	if v.Status != "" {
		b.WriteString(fmt.Sprintf("\n<i>%s</i>\n", html.EscapeString(v.Status)))
	}
	b.WriteString("\n" + tip(v.KeyPresent))
	return b.String()
}

// FormatFavorites renders the favorites list.
func FormatFavorites(tickers []string) string {
	if len(tickers) == 0 {
		return "⭐ No favorites yet. Load a symbol and send /save."
	}
	var b strings.Builder
	b.WriteString("⭐ <b>Favorites</b>\n\n")
	for _, t := range tickers {
		b.WriteString(fmt.Sprintf("• <b>%s</b> (%s)\n", html.EscapeString(symbol.ToDisplay(t)), html.EscapeString(t)))
	}
	b.WriteString("\nSend /load SYMBOL to open one, /remove SYMBOL to drop it.")
	return b.String()
}

// FormatSuggestions renders company search results for query.
func FormatSuggestions(query string, results []model.SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("No matches for “%s”. Try a ticker (AAPL) or a different name.", html.EscapeString(query))
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔎 <b>Results for “%s”</b>\n\n", html.EscapeString(query)))
	for _, r := range results {
		line := fmt.Sprintf("• <b>%s</b> · %s", html.EscapeString(strings.ToUpper(r.Symbol)), html.EscapeString(r.Name))
		if r.Exchange != "" {
			line += fmt.Sprintf(" (%s)", html.EscapeString(r.Exchange))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\nSend /load SYMBOL to open one.")
	return b.String()
}

// SparkSVG draws the snapshot sparkline. A nil snapshot or a series shorter
// than two closes yields an empty drawing of the same size.
func SparkSVG(snap *model.Snapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" width="%g" height="%g">`,
		calculator.SparkWidth, calculator.SparkHeight, calculator.SparkWidth, calculator.SparkHeight))
	if snap != nil && snap.Metrics.Spark.Path != "" {
		stroke := "#16a34a"
		if snap.Metrics.Change.Valid && snap.Metrics.Change.Float64 < 0 {
			stroke = "#dc2626"
		}
		b.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="2" stroke-linejoin="round" stroke-linecap="round"/>`,
			snap.Metrics.Spark.Path, stroke))
	}
	b.WriteString("</svg>")
	return b.String()
}

// FormatMoney renders n with thousands separators and at most two decimals.
func FormatMoney(n float64) string {
	d := decimal.NewFromFloat(n).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole := d.Truncate(0)
	out := sign + humanize.Comma(whole.IntPart())
	if frac := d.Sub(whole); !frac.IsZero() {
		out += strings.TrimPrefix(frac.String(), "0")
	}
	return out
}

// FormatChange renders "+1.23 (0.45%)". Both parts must be defined.
func FormatChange(change, pct null.Float) string {
	if !change.Valid || !pct.Valid {
		return Placeholder
	}
	sign := ""
	if change.Float64 >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%s (%s%%)", sign, FormatMoney(change.Float64),
		decimal.NewFromFloat(pct.Float64).Shift(2).StringFixed(2))
}

// FormatVolume renders the volume with thousands separators.
func FormatVolume(v null.Float) string {
	if !v.Valid {
		return Placeholder
	}
	return humanize.Commaf(v.Float64)
}

// FormatRange renders the 52-week position as "NN% of 52W".
func FormatRange(pos null.Float) string {
	if !pos.Valid {
		return Placeholder
	}
	return decimal.NewFromFloat(pos.Float64).StringFixed(0) + "% of 52W"
}

// TrendLabel maps a trend to its display label.
func TrendLabel(t model.Trend) string {
	switch t {
	case model.TrendAbove:
		return "Above 20D"
	case model.TrendBelow:
		return "Below 20D"
	case model.TrendNear:
		return "Near 20D"
	default:
		return Placeholder
	}
}

func dollars(v null.Float) string {
	if !v.Valid {
		return Placeholder
	}
	return "$" + FormatMoney(v.Float64)
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

func tip(keyPresent bool) string {
	if keyPresent {
		return tipKey
	}
	return tipNoKey
}
