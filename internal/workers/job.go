package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
)

// periodicJob calls run on a ticker until its context is cancelled or Stop
// is called. A failed run is logged and retried on the next tick.
type periodicJob struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newPeriodicJob(name string, interval time.Duration, run func(ctx context.Context) error, log *logger.Logger) *periodicJob {
	return &periodicJob{name: name, interval: interval, run: run, logger: log}
}

// Start implements Worker. A running job is stopped first.
func (j *periodicJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Str("worker", j.name).Dur("interval", j.interval).Msg("worker started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.run(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Err(err).Str("worker", j.name).Msg("worker run failed")
				}
			}
		}
	}()
}

// Stop implements Worker. It is a no-op when the job is not running.
func (j *periodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
