package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-storage/internal/crypto"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/metrics"
	"github.com/MKhiriev/go-secure-storage/internal/store"
)

// keySweeper deletes secret keys whose alias has no entry in either store
// variant. Removing an entry keeps its key; the sweeper reclaims them later.
type keySweeper struct {
	keys     crypto.SecretKeyManager
	storages *store.Storages
	locks    KeyLocker
	metrics  *metrics.Metrics

	logger *logger.Logger
}

// NewKeySweeper returns a sweeper sharing locks with the cipher item store,
// so no key is deleted while a write under the same alias is in flight.
// m may be nil.
func NewKeySweeper(keys crypto.SecretKeyManager, storages *store.Storages, locks KeyLocker,
	m *metrics.Metrics, log *logger.Logger) KeySweeper {
	return &keySweeper{keys: keys, storages: storages, locks: locks, metrics: m, logger: log}
}

// Sweep implements KeySweeper. An alias whose entries cannot be checked is
// kept; such failures are joined into the returned error.
func (s *keySweeper) Sweep(ctx context.Context) (int, error) {
	aliases, err := s.keys.Aliases(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "keySweeper.Sweep").Msg("error listing secret keys")
		return 0, MapError(err)
	}

	var (
		deleted int
		errs    []error
	)
	for _, alias := range aliases {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		swept, err := s.sweepAlias(ctx, alias)
		if err != nil {
			s.logger.Err(err).Str("func", "keySweeper.Sweep").Msg("error sweeping secret key")
			errs = append(errs, err)
			continue
		}
		if swept {
			deleted++
		}
	}

	if s.metrics != nil {
		s.metrics.RecordKeysSwept(deleted)
	}
	s.logger.Info().Int("checked", len(aliases)).Int("deleted", deleted).Msg("orphaned secret keys swept")

	if len(errs) > 0 {
		return deleted, MapError(errors.Join(errs...))
	}
	return deleted, nil
}

func (s *keySweeper) sweepAlias(ctx context.Context, alias string) (bool, error) {
	unlock := s.locks.Lock(alias)
	defer unlock()

	for _, st := range []store.KeyedStore{s.storages.Local, s.storages.Synchronizable} {
		_, found, err := st.Get(ctx, alias)
		if err != nil {
			return false, fmt.Errorf("check entry: %w", err)
		}
		if found {
			return false, nil
		}
	}

	if err := s.keys.DeleteKey(ctx, alias); err != nil {
		return false, err
	}

	return true, nil
}
