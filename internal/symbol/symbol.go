package symbol

import (
	"regexp"
	"strings"
)

// DefaultSuffix is the market suffix appended to bare tickers.
const DefaultSuffix = ".us"

var (
	whitespace  = regexp.MustCompile(`\s+`)
	tickerShape = regexp.MustCompile(`^[A-Za-z.\-]{1,8}$`)
)

// Normalize converts user input into a provider ticker such as "aapl.us".
// It reports false for empty input.
func Normalize(input string) (string, bool) {
	t := strings.TrimSpace(input)
	if t == "" {
		return "", false
	}
	t = strings.ToLower(whitespace.ReplaceAllString(t, ""))
	if strings.Contains(t, ".") {
		return t, true
	}
	return t + DefaultSuffix, true
}

// ToDisplay strips the market suffix and uppercases: "aapl.us" -> "AAPL".
func ToDisplay(ticker string) string {
	base, _, _ := strings.Cut(ticker, ".")
	return strings.ToUpper(base)
}

// LooksLikeTicker reports whether raw input can be used as a symbol directly
// instead of being resolved through a name search.
func LooksLikeTicker(raw string) bool {
	return tickerShape.MatchString(strings.TrimSpace(raw))
}
