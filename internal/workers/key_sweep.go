package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/service"
)

// NewKeySweepWorker returns a worker running sweeper each interval. The
// sweeper records its own metrics.
func NewKeySweepWorker(sweeper service.KeySweeper, interval time.Duration, log *logger.Logger) Worker {
	return newPeriodicJob("key_sweep", interval, func(ctx context.Context) error {
		n, err := sweeper.Sweep(ctx)
		if n > 0 {
			log.Info().Int("deleted", n).Msg("orphaned secret keys swept")
		}
		return err
	}, log)
}
