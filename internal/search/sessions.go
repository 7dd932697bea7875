package search

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionTTL is how long an idle session keeps its debouncer.
const SessionTTL = 10 * time.Minute

// Sessions hands out one Debouncer per client session.
type Sessions struct {
	Delay time.Duration
	TTL   time.Duration

	mu    sync.Mutex
	items map[string]*Debouncer
	now   func() time.Time
}

func NewSessions(delay time.Duration) *Sessions {
	return &Sessions{
		Delay: delay,
		TTL:   SessionTTL,
		items: make(map[string]*Debouncer),
		now:   time.Now,
	}
}

// Get returns the debouncer for id, creating a session (with a fresh id when
// id is empty) as needed. Idle sessions are swept on every call.
func (s *Sessions) Get(id string) (string, *Debouncer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	if id == "" {
		id = uuid.NewString()
	}
	d, ok := s.items[id]
	if !ok {
		d = NewDebouncer(s.Delay)
		s.items[id] = d
	}
	d.touch(s.now())
	return id, d
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Sessions) evictLocked() {
	cutoff := s.now().Add(-s.TTL)
	for id, d := range s.items {
		if d.idleSince().Before(cutoff) {
			delete(s.items, id)
		}
	}
}
