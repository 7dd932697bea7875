package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"TickerPane/internal/model"
	"TickerPane/internal/widget"
)

// Refresher reloads the displayed symbol.
type Refresher interface {
	Refresh(ctx context.Context) (*model.Snapshot, error)
}

// Scheduler manages the cron tasks.
type Scheduler struct {
	Cron   *cron.Cron
	Widget Refresher
	Ctx    context.Context

	mu      sync.Mutex
	running bool
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, w Refresher) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Widget: w,
		Ctx:    ctx,
	}
}

// RegisterAll registers the refresh task. An empty spec disables it.
func (s *Scheduler) RegisterAll(refreshCron string) error {
	if refreshCron == "" {
		log.Println("[INFO] refresh task disabled")
		return nil
	}
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running task.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately.
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	// Skip a tick while the previous refresh is still fetching.
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.Println("[WARN] previous refresh still running, skipping")
		return
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	snap, err := s.Widget.Refresh(s.Ctx)
	switch {
	case errors.Is(err, widget.ErrStale):
		log.Println("[INFO] refresh superseded by a user load")
	case err != nil:
		log.Printf("[ERROR] refresh: %v", err)
	default:
		log.Printf("[INFO] refreshed %s, last data %s", snap.Symbol, snap.Last.Date)
	}
}
