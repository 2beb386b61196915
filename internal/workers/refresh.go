// Package workers runs the client's background jobs. The only job today is
// the periodic snippet list refresh, which is disabled unless a refresh
// interval is configured.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/mfadhilr/contekan/internal/logger"
)

// SnippetLoader reloads the in-memory snippet collection from the server.
type SnippetLoader interface {
	Load(ctx context.Context) error
}

// RefreshJob periodically reloads the snippet list in the background.
type RefreshJob interface {
	// Start launches the background goroutine. A zero or negative
	// interval disables the job. Any previously running job is stopped
	// before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated. Safe to call when the job is not running.
	Stop()
}

type refreshJob struct {
	loader SnippetLoader
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob that calls loader.Load on a ticker.
// The job is idle until Start is called.
func NewRefreshJob(loader SnippetLoader, logger *logger.Logger) RefreshJob {
	return &refreshJob{loader: loader, logger: logger}
}

func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		j.logger.Debug().Msg("background refresh disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", interval).Msg("background refresh started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.loader.Load(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("background refresh failed")
				}
			}
		}
	}()
}

func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
