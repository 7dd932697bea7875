package prefs

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"TickerPane/internal/store"
)

// LookupKeyKey is the store key holding the metadata provider key.
const LookupKeyKey = "lookup_key"

// ErrEmptyKey is returned when saving a blank lookup key.
var ErrEmptyKey = errors.New("empty lookup key")

// KeyStore holds the optional metadata lookup key.
type KeyStore struct {
	mu    sync.Mutex
	store store.Store
}

func NewKeyStore(s store.Store) *KeyStore {
	return &KeyStore{store: s}
}

// Get returns the stored key, or "" when none is saved.
func (k *KeyStore) Get() string {
	k.mu.Lock()
	defer k.mu.Unlock()

	v, ok, err := k.store.Get(LookupKeyKey)
	if err != nil {
		log.Printf("[WARN] read lookup key: %v", err)
		return ""
	}
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// Present reports whether a key is saved.
func (k *KeyStore) Present() bool { return k.Get() != "" }

// Set trims and stores key.
func (k *KeyStore) Set(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.store.Set(LookupKeyKey, key); err != nil {
		return fmt.Errorf("save lookup key: %w", err)
	}
	return nil
}

// Clear removes the stored key.
func (k *KeyStore) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.store.Clear(LookupKeyKey); err != nil {
		return fmt.Errorf("clear lookup key: %w", err)
	}
	return nil
}
