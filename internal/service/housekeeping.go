package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tasknest/tasknest/internal/store"
)

const (
	DefaultHousekeepingInterval  = time.Hour
	DefaultLoginHistoryRetention = 90 * 24 * time.Hour
)

// HousekeepingService prunes expired login history rows on a fixed interval
// so the audit table does not grow without bound.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// Start launches the background pruning loop. It runs one sweep immediately
// so a long-stopped instance catches up on boot.
func (s *HousekeepingService) Start() {
	if s.Interval <= 0 {
		s.Interval = DefaultHousekeepingInterval
	}
	if s.Retention <= 0 {
		s.Retention = DefaultLoginHistoryRetention
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run()
}

// Stop signals the loop and waits for the in-flight sweep to finish.
func (s *HousekeepingService) Stop() {
	if s.stopCh == nil {
		return
	}
	close(s.stopCh)
	<-s.doneCh
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.sweep()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().UTC().Add(-s.Retention)
	n, err := s.Store.LoginHistory().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.Logger.Error("login history sweep failed", "err", err)
		return
	}
	if n > 0 {
		s.Logger.Info("pruned login history", "deleted", n, "cutoff", cutoff)
	}
}
