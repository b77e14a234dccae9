// Package sweeper removes abandoned checkout snapshots in the background.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"gemstore/internal/pkg/clock"
	"gemstore/internal/pkg/config"
	"gemstore/internal/pkg/metrics"
)

// ExpiredDeleter is satisfied by the checkout repository. Snapshots with a
// live payment intent are excluded by the query itself so a purge can never
// race an in-flight capture.
type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type Sweeper struct {
	repo     ExpiredDeleter
	clock    clock.Clock
	metrics  *metrics.Metrics
	interval time.Duration
	retain   time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func New(repo ExpiredDeleter, clk clock.Clock, m *metrics.Metrics, cfg config.CheckoutConfig) *Sweeper {
	return &Sweeper{
		repo:     repo,
		clock:    clk,
		metrics:  m,
		interval: cfg.SweepInterval,
		retain:   cfg.Retention,
	}
}

// Start launches the sweep loop. It runs once immediately, then on every
// tick until Stop is called.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		s.sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := s.clock.Now().Add(-s.retain)

	purged, err := s.repo.DeleteExpired(ctx, cutoff)
	if err != nil {
		slog.ErrorContext(ctx, "checkout sweep failed", "error", err)
		return
	}

	if purged > 0 {
		s.metrics.CheckoutsPurged.Add(float64(purged))
		slog.InfoContext(ctx, "purged expired checkouts", "count", purged, "cutoff", cutoff)
	}
}
