// Package jobs provides scheduled background tasks for the order service.
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const storeProbeSchedule = "*/15 * * * * *"

// StorePinger verifies that the order store is reachable.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// StoreProbeJob pings the order store every fifteen seconds and caches the
// outcome so health checks do not hit the store on every request.
type StoreProbeJob struct {
	pinger StorePinger
	cron   *cron.Cron
	logger *slog.Logger

	mu         sync.RWMutex
	lastResult error
}

// NewStoreProbeJob creates a probe job for the given store.
// The store counts as healthy until the first probe completes.
func NewStoreProbeJob(pinger StorePinger, logger *slog.Logger) *StoreProbeJob {
	return &StoreProbeJob{
		pinger: pinger,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "store_probe_job"),
	}
}

// Start begins the store probe job. The first probe runs immediately.
func (j *StoreProbeJob) Start() error {
	_, err := j.cron.AddFunc(storeProbeSchedule, j.probe)
	if err != nil {
		return err
	}

	j.probe()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store probe job started (running every fifteen seconds)")
	return nil
}

// Stop stops the store probe job.
func (j *StoreProbeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Store probe job stopped")
}

// LastResult returns the error reported by the most recent probe, or nil
// when the store was reachable. Intended for use as a health check.
func (j *StoreProbeJob) LastResult() error {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.lastResult
}

func (j *StoreProbeJob) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := j.pinger.Ping(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Store probe failed", "error", err)
	}

	j.mu.Lock()
	j.lastResult = err
	j.mu.Unlock()
}
