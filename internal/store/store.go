package store

import (
	"fmt"
	"log"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Store is a small durable key-value store for user preferences.
// Values are opaque strings; callers own the encoding.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Clear(key string) error
	Close() error
}

// Open returns the configured backend. path is the database file for sqlite
// and the JSON state file for file; memory ignores it.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendFile:
		return NewFileStore(path)
	case BackendMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// OpenOrMemory is Open with a fallback to an in-memory store, so preferences
// still work for the session when the durable backend is unavailable.
func OpenOrMemory(backend, path string) Store {
	s, err := Open(backend, path)
	if err != nil {
		log.Printf("[WARN] store backend %s unavailable (%v), preferences will not persist", backend, err)
		return NewMemoryStore()
	}
	return s
}
