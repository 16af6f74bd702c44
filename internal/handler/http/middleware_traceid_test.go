package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		wantSame       bool
	}{
		{name: "trace id from request header is reused", requestTraceID: "my-custom-trace-id", wantSame: true},
		{name: "no trace id in request, uuid generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *http.Request
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = r
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/storage/get_item", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(TraceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			newTestHandler().withTraceID(next).ServeHTTP(rr, req)

			require.NotNil(t, captured)
			got := rr.Header().Get(TraceIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}

			// a request-scoped logger is attached to the context
			assert.NotNil(t, log.Ctx(captured.Context()))
		})
	}
}

func TestWithTraceID_DistinctPerRequest(t *testing.T) {
	h := newTestHandler().withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/", nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.NotEqual(t, first.Header().Get(TraceIDHeader), second.Header().Get(TraceIDHeader))
}
