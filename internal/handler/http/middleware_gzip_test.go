package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip(t *testing.T) {
	payload := []byte(`{"keys":["secure-storage_a"]}`)

	tests := []struct {
		name            string
		requestBody     []byte
		contentEncoding string
		acceptEncoding  string
		status          int
		wantStatus      int
		wantCompressed  bool
		wantSeenBody    []byte
	}{
		{
			name:         "plain request, plain response",
			requestBody:  payload,
			status:       http.StatusOK,
			wantStatus:   http.StatusOK,
			wantSeenBody: payload,
		},
		{
			name:            "gzip request is inflated",
			requestBody:     gzipBytes(t, payload),
			contentEncoding: "gzip",
			status:          http.StatusOK,
			wantStatus:      http.StatusOK,
			wantSeenBody:    payload,
		},
		{
			name:           "gzip response when accepted",
			requestBody:    payload,
			acceptEncoding: "gzip, deflate",
			status:         http.StatusOK,
			wantStatus:     http.StatusOK,
			wantCompressed: true,
			wantSeenBody:   payload,
		},
		{
			name:           "no content is never compressed",
			requestBody:    payload,
			acceptEncoding: "gzip",
			status:         http.StatusNoContent,
			wantStatus:     http.StatusNoContent,
			wantSeenBody:   payload,
		},
		{
			name:            "corrupt gzip request",
			requestBody:     []byte("definitely not gzip"),
			contentEncoding: "gzip",
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []byte
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = io.ReadAll(r.Body)
				w.WriteHeader(tt.status)
				if tt.status != http.StatusNoContent {
					_, _ = w.Write(payload)
				}
			})

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.requestBody))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantSeenBody != nil {
				assert.Equal(t, tt.wantSeenBody, seen)
			}

			if tt.wantCompressed {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				zr, err := gzip.NewReader(rr.Body)
				require.NoError(t, err)
				got, err := io.ReadAll(zr)
				require.NoError(t, err)
				assert.Equal(t, payload, got)
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
		})
	}
}
