package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-skladischer/internal/logger"
)

// DefaultRefreshInterval is used when the job is created with a non-positive
// interval.
const DefaultRefreshInterval = 30 * time.Second

type clientRefreshJob struct {
	state    InventoryState
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a job that calls state.Refresh on a ticker. The
// job is idle until Start is called.
func NewClientRefreshJob(state InventoryState, interval time.Duration, log *logger.Logger) ClientRefreshJob {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &clientRefreshJob{state: state, interval: interval, logger: log}
}

// Start implements ClientRefreshJob. Ticks are skipped while no session is
// held. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !j.state.IsAuthenticated() {
					continue
				}
				j.logger.Debug().Msg("refreshing inventory")
				j.state.Refresh()
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
