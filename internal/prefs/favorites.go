package prefs

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"TickerPane/internal/collector"
	"TickerPane/internal/store"
	"TickerPane/internal/symbol"
)

// FavoritesKey is the store key holding the JSON array of favorite tickers.
const FavoritesKey = "favorites"

// Favorites is the user's ordered watchlist, most recently added first.
type Favorites struct {
	mu    sync.Mutex
	store store.Store
}

func NewFavorites(s store.Store) *Favorites {
	return &Favorites{store: s}
}

// List returns the stored tickers. Missing or unreadable data yields an empty list.
func (f *Favorites) List() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Contains reports whether ticker is already a favorite.
func (f *Favorites) Contains(ticker string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.load() {
		if t == ticker {
			return true
		}
	}
	return false
}

// Add normalizes input and puts it at the front of the list. Adding a ticker
// that is already present changes nothing and reports added=false.
func (f *Favorites) Add(input string) (ticker string, added bool, err error) {
	ticker, ok := symbol.Normalize(input)
	if !ok {
		return "", false, collector.ErrInvalidSymbol
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	list := f.load()
	for _, t := range list {
		if t == ticker {
			return ticker, false, nil
		}
	}
	list = append([]string{ticker}, list...)
	if err := f.save(list); err != nil {
		return ticker, false, err
	}
	return ticker, true, nil
}

// Remove deletes ticker (exact match). Removing an absent ticker is a no-op.
func (f *Favorites) Remove(ticker string) (removed bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	list := f.load()
	out := list[:0]
	for _, t := range list {
		if t == ticker {
			removed = true
			continue
		}
		out = append(out, t)
	}
	if !removed {
		return false, nil
	}
	if err := f.save(out); err != nil {
		return false, err
	}
	return true, nil
}

func (f *Favorites) load() []string {
	raw, ok, err := f.store.Get(FavoritesKey)
	if err != nil {
		log.Printf("[WARN] read favorites: %v", err)
		return []string{}
	}
	if !ok || raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("[WARN] stored favorites are corrupted, starting empty: %v", err)
		return []string{}
	}
	if list == nil {
		return []string{}
	}
	return list
}

func (f *Favorites) save(list []string) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	if err := f.store.Set(FavoritesKey, string(data)); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}
