package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/metrics"
	"github.com/MKhiriev/go-secure-storage/internal/store"
)

// NewGCWorker returns a worker collecting garbage in every collector each
// interval. m may be nil.
func NewGCWorker(collectors []store.GarbageCollector, interval time.Duration, m *metrics.Metrics, log *logger.Logger) Worker {
	return newPeriodicJob("gc", interval, func(ctx context.Context) error {
		var errs []error
		for _, c := range collectors {
			err := c.CollectGarbage(ctx)
			if m != nil && ctx.Err() == nil {
				m.RecordGC(err)
			}
			if err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}, log)
}
