package widget

import (
	"context"
	"errors"
	"log"
	"sync"

	"TickerPane/internal/collector"
	"TickerPane/internal/model"
	"TickerPane/internal/prefs"
	"TickerPane/internal/search"
	"TickerPane/internal/symbol"
)

var (
	// ErrStale means a newer load started before this one finished; its result was dropped.
	ErrStale = errors.New("superseded by a newer load")
	// ErrNothingLoaded means the action needs a displayed symbol.
	ErrNothingLoaded = errors.New("no symbol loaded")
)

// Loader is the part of the collector the widget drives.
type Loader interface {
	Load(ctx context.Context, input string) (*model.Snapshot, error)
	LoadTicker(ctx context.Context, ticker, profileSymbol string) (*model.Snapshot, error)
	Suggest(ctx context.Context, query string) ([]model.SearchResult, error)
}

// Widget owns the displayed snapshot and the user's preferences.
type Widget struct {
	loader        Loader
	favorites     *prefs.Favorites
	keys          *prefs.KeyStore
	defaultSymbol string

	mu      sync.Mutex
	seq     uint64
	current *model.Snapshot
	status  string
}

// New creates a Widget. defaultSymbol is loaded by Refresh when nothing is displayed.
func New(loader Loader, favorites *prefs.Favorites, keys *prefs.KeyStore, defaultSymbol string) *Widget {
	return &Widget{
		loader:        loader,
		favorites:     favorites,
		keys:          keys,
		defaultSymbol: defaultSymbol,
	}
}

// Load resolves input and displays it. Only the most recent load may change the
// display; earlier ones return ErrStale. A failed load keeps the previous
// snapshot and sets a status message. Saved favorites skip name resolution.
func (w *Widget) Load(ctx context.Context, input string) (*model.Snapshot, error) {
	if ticker, ok := symbol.Normalize(input); ok && w.favorites.Contains(ticker) {
		return w.display(ctx, input, func(ctx context.Context) (*model.Snapshot, error) {
			return w.loader.LoadTicker(ctx, ticker, "")
		})
	}
	return w.display(ctx, input, func(ctx context.Context) (*model.Snapshot, error) {
		return w.loader.Load(ctx, input)
	})
}

// Refresh reloads the displayed ticker, or the default symbol when nothing is
// shown. The displayed ticker is fetched as is, never re-resolved.
func (w *Widget) Refresh(ctx context.Context) (*model.Snapshot, error) {
	ticker, profileSymbol := w.defaultSymbol, ""
	w.mu.Lock()
	if w.current != nil {
		ticker, profileSymbol = w.current.Ticker, w.current.ProfileSymbol
	}
	w.mu.Unlock()
	return w.display(ctx, ticker, func(ctx context.Context) (*model.Snapshot, error) {
		return w.loader.LoadTicker(ctx, ticker, profileSymbol)
	})
}

func (w *Widget) display(ctx context.Context, label string, load func(context.Context) (*model.Snapshot, error)) (*model.Snapshot, error) {
	w.mu.Lock()
	w.seq++
	seq := w.seq
	w.mu.Unlock()

	snap, err := load(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if seq != w.seq {
		return nil, ErrStale
	}
	if err != nil {
		w.status = StatusMessage(err)
		log.Printf("[WARN] load %q failed: %v", label, err)
		return nil, err
	}
	snap.Seq = seq
	w.current = snap
	w.status = ""
	log.Printf("[INFO] loaded %s (%d bars)", snap.Symbol, snap.Bars)
	return snap, nil
}

// Current returns the displayed snapshot, or nil.
func (w *Widget) Current() *model.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// SaveCurrent adds the displayed ticker to favorites.
func (w *Widget) SaveCurrent() (ticker string, added bool, err error) {
	snap := w.Current()
	if snap == nil {
		return "", false, ErrNothingLoaded
	}
	return w.favorites.Add(snap.Ticker)
}

// SaveFavorite adds input to favorites without loading it.
func (w *Widget) SaveFavorite(input string) (ticker string, added bool, err error) {
	return w.favorites.Add(input)
}

// RemoveFavorite removes input, given as a ticker or display symbol.
func (w *Widget) RemoveFavorite(input string) (ticker string, removed bool, err error) {
	ticker, ok := symbol.Normalize(input)
	if !ok {
		return "", false, collector.ErrInvalidSymbol
	}
	removed, err = w.favorites.Remove(ticker)
	return ticker, removed, err
}

// Favorites lists the saved tickers.
func (w *Widget) Favorites() []string { return w.favorites.List() }

// SetKey stores the lookup key.
func (w *Widget) SetKey(key string) error { return w.keys.Set(key) }

// ClearKey removes the lookup key.
func (w *Widget) ClearKey() error { return w.keys.Clear() }

// KeyPresent reports whether a lookup key is stored.
func (w *Widget) KeyPresent() bool { return w.keys.Present() }

// Suggest runs an autocomplete search through d so that only the latest
// query of a session produces results.
func (w *Widget) Suggest(ctx context.Context, d *search.Debouncer, query string) ([]model.SearchResult, error) {
	var results []model.SearchResult
	err := d.Do(ctx, func(ctx context.Context) error {
		r, err := w.loader.Suggest(ctx, query)
		if err != nil {
			return err
		}
		results = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// View returns what a renderer needs to draw the widget.
func (w *Widget) View() model.View {
	w.mu.Lock()
	v := model.View{Snapshot: w.current, Status: w.status}
	w.mu.Unlock()

	v.Favorites = w.favorites.List()
	v.KeyPresent = w.keys.Present()
	return v
}

// StatusMessage maps a load error to the message shown to the user.
func StatusMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, collector.ErrEmptyInput):
		return "Type a ticker (AAPL) or search a company name."
	case errors.Is(err, collector.ErrInvalidSymbol):
		return "Invalid symbol."
	case errors.Is(err, collector.ErrNoMatches):
		return "No matches. Try a ticker symbol (AAPL, TSLA, SPY)."
	case errors.Is(err, collector.ErrNeedsLookupKey):
		return "Company-name lookup needs an API key. Save one with /key, or type a ticker (AAPL)."
	case errors.Is(err, ErrNothingLoaded):
		return "Nothing loaded yet. Send a ticker first."
	case errors.Is(err, prefs.ErrEmptyKey):
		return "Usage: /key YOUR_API_KEY"
	default:
		return "Couldn't load that symbol. Try a different ticker (AAPL, TSLA, SPY)."
	}
}
