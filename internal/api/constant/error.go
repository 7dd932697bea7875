package constant

import (
	"errors"
	"net/http"

	"TickerPane/internal/collector"
	"TickerPane/internal/prefs"
	"TickerPane/internal/search"
	"TickerPane/internal/widget"
)

type CustomError struct {
	StatusCode int
	Message    string
}

func NewCError(StatusCode int, Message string) CustomError {
	return CustomError{StatusCode: StatusCode, Message: Message}
}

func (err CustomError) Error() string {
	return err.Message
}

var (
	ErrStale = NewCError(http.StatusConflict,
		"a newer load replaced this one")
	ErrSuperseded = NewCError(http.StatusConflict,
		"a newer search replaced this one")
	ErrTimeout = NewCError(http.StatusGatewayTimeout,
		"request timed out")
)

// FromError maps domain errors onto HTTP errors carrying the user-facing
// status message. ok is false for errors it does not know.
func FromError(err error) (ce CustomError, ok bool) {
	switch {
	case errors.As(err, &ce):
		return ce, true
	case errors.Is(err, widget.ErrStale):
		return ErrStale, true
	case errors.Is(err, search.ErrSuperseded):
		return ErrSuperseded, true
	case errors.Is(err, collector.ErrEmptyInput),
		errors.Is(err, collector.ErrInvalidSymbol),
		errors.Is(err, collector.ErrNeedsLookupKey),
		errors.Is(err, prefs.ErrEmptyKey):
		return NewCError(http.StatusBadRequest, widget.StatusMessage(err)), true
	case errors.Is(err, collector.ErrNoMatches),
		errors.Is(err, widget.ErrNothingLoaded):
		return NewCError(http.StatusNotFound, widget.StatusMessage(err)), true
	case errors.Is(err, collector.ErrFetchFailed),
		errors.Is(err, collector.ErrNoData):
		return NewCError(http.StatusBadGateway, widget.StatusMessage(err)), true
	}
	return CustomError{}, false
}
