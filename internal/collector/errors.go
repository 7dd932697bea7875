package collector

import "errors"

var (
	// ErrEmptyInput means the user submitted nothing to load.
	ErrEmptyInput = errors.New("empty symbol input")
	// ErrInvalidSymbol means the input could not be turned into a ticker.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrFetchFailed covers transport errors and non-success statuses, after the relay fallback.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrNoData means the provider answered but the body had no usable history.
	ErrNoData = errors.New("no CSV data (invalid ticker?)")
	// ErrNoMatches means a name search returned nothing.
	ErrNoMatches = errors.New("no matches")
	// ErrNeedsLookupKey means the request needs the metadata provider but no key is stored.
	ErrNeedsLookupKey = errors.New("lookup key required")
)
