package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls     atomic.Int32
	idleAfter atomic.Int64
}

func (that *countingSweeper) SweepIdle(_ context.Context, idleAfter time.Duration) int {
	that.calls.Add(1)
	that.idleAfter.Store(int64(idleAfter))

	return 0
}

func TestReaper(t *testing.T) {
	// Given: a reaper sweeping every 10ms
	sweeper := &countingSweeper{}
	reaper := NewReaper(newTestLogger(), sweeper, 10*time.Millisecond, time.Minute)

	// When: it runs for a while
	require.NoError(t, reaper.Start(context.Background()))

	// Then: the sweep is called with the configured idle window, and stops after shutdown
	require.Eventually(t, func() bool {
		return sweeper.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(time.Minute), sweeper.idleAfter.Load())

	require.NoError(t, reaper.Shutdown())

	stopped := sweeper.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, sweeper.calls.Load())
}

func TestReaper_ShutdownWithoutStart(t *testing.T) {
	reaper := NewReaper(newTestLogger(), &countingSweeper{}, time.Minute, time.Minute)

	require.NoError(t, reaper.Shutdown())
}
