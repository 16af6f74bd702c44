package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
)

// withRateLimit rejects calls beyond the configured token bucket with 429.
// It is a no-op when no limit is configured.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			http.Error(w, ErrTooManyRequests.Error(), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
