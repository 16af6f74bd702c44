package http

import (
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/metrics"
)

const transportHTTP = "http"

// withMetrics counts every storage call by RPC name and outcome. The
// outcome is the X-Error-Code of a failed call, "ok" for a 2xx answer and
// the bare status otherwise (auth, limits, timeouts).
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		h.metrics.RecordRequest(transportHTTP, path.Base(r.URL.Path), outcome(mw), time.Since(start))
	})
}

func outcome(w *responseWriter) string {
	if code := w.Header().Get(ErrorCodeHeader); code != "" {
		return code
	}
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}
	if status < http.StatusBadRequest {
		return metrics.CodeOK
	}
	return strconv.Itoa(status)
}
