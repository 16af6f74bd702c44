package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		event := log.Info()
		if lw.status >= http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Str("code", lw.Header().Get(ErrorCodeHeader)).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
