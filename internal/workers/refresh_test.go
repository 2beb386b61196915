// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mfadhilr/contekan/internal/logger"
)

// spyLoader counts Load calls.
type spyLoader struct {
	calls atomic.Int64
	err   error
}

func (s *spyLoader) Load(_ context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestRefreshJob_Start_CallsLoad(t *testing.T) {
	spy := &spyLoader{}
	job := NewRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Load should run repeatedly, ran %d times", got)
}

func TestRefreshJob_ZeroIntervalDisablesJob(t *testing.T) {
	spy := &spyLoader{}
	job := NewRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyLoader{}
	job := NewRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no further Load calls after Stop")
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyLoader{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyLoader{}, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_LoadErrorDoesNotStopJob(t *testing.T) {
	spy := &spyLoader{err: assert.AnError}
	job := NewRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestRefreshJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spyLoader{}
	job := NewRefreshJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestRefreshJob_Restart_ReplacesPrevious(t *testing.T) {
	spy := &spyLoader{}
	job := NewRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}
