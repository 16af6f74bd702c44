package http

import (
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/metrics"
	"github.com/MKhiriev/go-secure-storage/internal/service"
	"github.com/MKhiriev/go-secure-storage/internal/utils"
	"golang.org/x/time/rate"
)

// Handler serves the storage RPCs of a single ItemStore.
type Handler struct {
	items   service.ItemStore
	metrics *metrics.Metrics

	// tokenSignKey enables bearer authentication and body hashing when set.
	tokenSignKey string
	tokenIssuer  string
	hasher       *utils.Hasher

	limiter        *rate.Limiter
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds a Handler. m may be nil, in which case no metrics are
// recorded and /metrics is not served.
func NewHandler(items service.ItemStore, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	h := &Handler{
		items:          items,
		metrics:        m,
		tokenSignKey:   cfg.App.TokenSignKey,
		tokenIssuer:    cfg.App.TokenIssuer,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}

	if cfg.App.TokenSignKey != "" {
		h.hasher = utils.NewHasher(cfg.App.TokenSignKey)
	}
	if cfg.Server.RateLimit > 0 {
		burst := cfg.Server.RateBurst
		if burst <= 0 {
			burst = int(cfg.Server.RateLimit) + 1
		}
		h.limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), burst)
	}

	logger.Debug().
		Bool("auth", h.tokenSignKey != "").
		Bool("rate_limit", h.limiter != nil).
		Msg("HTTP handler created")
	return h
}
