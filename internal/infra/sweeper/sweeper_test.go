//go:build unit

package sweeper_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"gemstore/internal/infra/sweeper"
	"gemstore/internal/pkg/clock"
	"gemstore/internal/pkg/config"
	"gemstore/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeleter struct {
	mu      sync.Mutex
	cutoffs []time.Time
	purged  int64
	err     error
}

func (f *fakeDeleter) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.purged, f.err
}

func (f *fakeDeleter) calls() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.cutoffs...)
}

func TestSweeper(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	newSweeper := func(repo *fakeDeleter, interval time.Duration) *sweeper.Sweeper {
		cfg := config.CheckoutConfig{SweepInterval: interval, Retention: 30 * time.Minute}
		return sweeper.New(repo, clock.NewMockClock(now), metrics.New(), cfg)
	}

	t.Run("sweeps immediately with the retention cutoff", func(t *testing.T) {
		repo := &fakeDeleter{purged: 3}
		s := newSweeper(repo, time.Hour)

		s.Start()
		require.Eventually(t, func() bool { return len(repo.calls()) >= 1 }, time.Second, 5*time.Millisecond)
		s.Stop()

		assert.Equal(t, now.Add(-30*time.Minute), repo.calls()[0])
	})

	t.Run("keeps ticking until stopped", func(t *testing.T) {
		repo := &fakeDeleter{}
		s := newSweeper(repo, 10*time.Millisecond)

		s.Start()
		require.Eventually(t, func() bool { return len(repo.calls()) >= 3 }, time.Second, 5*time.Millisecond)
		s.Stop()

		seen := len(repo.calls())
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, seen, len(repo.calls()), "no sweeps after Stop")
	})

	t.Run("a failing sweep does not kill the loop", func(t *testing.T) {
		repo := &fakeDeleter{err: context.DeadlineExceeded}
		s := newSweeper(repo, 10*time.Millisecond)

		s.Start()
		require.Eventually(t, func() bool { return len(repo.calls()) >= 2 }, time.Second, 5*time.Millisecond)
		s.Stop()
	})

	t.Run("stop before start is a no-op", func(t *testing.T) {
		s := newSweeper(&fakeDeleter{}, time.Hour)
		s.Stop()
	})
}
