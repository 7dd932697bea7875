package search

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a search is sent.
const DefaultDelay = 250 * time.Millisecond

// ErrSuperseded is returned to a call that lost to newer input.
var ErrSuperseded = errors.New("superseded by newer input")

// Debouncer runs at most one search at a time. Every call cancels the one
// before it, waits Delay, then runs; later input always wins.
type Debouncer struct {
	Delay time.Duration

	mu       sync.Mutex
	gen      uint64
	cancel   context.CancelFunc
	lastUsed time.Time
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{Delay: delay, lastUsed: time.Now()}
}

// Do waits for the quiet period and runs fn. If another call arrives before fn
// returns, this call reports ErrSuperseded and its result must be dropped.
func (d *Debouncer) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.lastUsed = time.Now()
	d.mu.Unlock()
	defer cancel()

	if d.Delay > 0 {
		timer := time.NewTimer(d.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return d.cancelled(ctx, gen)
		case <-timer.C:
		}
	}
	if !d.current(gen) {
		return ErrSuperseded
	}

	err := fn(ctx)
	if !d.current(gen) {
		return ErrSuperseded
	}
	return err
}

func (d *Debouncer) cancelled(ctx context.Context, gen uint64) error {
	if !d.current(gen) {
		return ErrSuperseded
	}
	return ctx.Err()
}

func (d *Debouncer) current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen == gen
}

func (d *Debouncer) touch(at time.Time) {
	d.mu.Lock()
	d.lastUsed = at
	d.mu.Unlock()
}

func (d *Debouncer) idleSince() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastUsed
}
