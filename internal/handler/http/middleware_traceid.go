package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-storage/internal/utils"
)

// TraceIDHeader carries the trace id of a call in both directions.
const TraceIDHeader = "X-Trace-ID"

// withTraceID reuses the caller's trace id or mints a new one, attaches a
// child logger carrying it to the request context and echoes it back.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.WithTraceID(traceID)
		w.Header().Set(TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
