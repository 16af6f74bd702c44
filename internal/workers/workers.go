package workers

import (
	"context"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/metrics"
	"github.com/MKhiriev/go-secure-storage/internal/service"
)

// Workers starts and stops a set of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the jobs enabled by cfg for services. The GC job runs
// only when some store needs compaction; the sweep only for the cipher
// variant. A zero interval disables a job.
func NewWorkers(services *service.Services, cfg config.Workers, m *metrics.Metrics, log *logger.Logger) *Workers {
	var ws Workers

	if cfg.GCInterval > 0 && services.Storages != nil {
		if collectors := services.Storages.GarbageCollectors(); len(collectors) > 0 {
			ws.workers = append(ws.workers, NewGCWorker(collectors, cfg.GCInterval, m, log))
		}
	}

	if cfg.KeySweepInterval > 0 && services.KeySweeper != nil {
		ws.workers = append(ws.workers, NewKeySweepWorker(services.KeySweeper, cfg.KeySweepInterval, log))
	}

	return &ws
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
