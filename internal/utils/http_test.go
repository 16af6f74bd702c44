package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{"keys", map[string][]string{"keys": {"a", "b"}}, http.StatusOK, http.StatusOK, `{"keys":["a","b"]}`, false},
		{"error payload", map[string]string{"code": "missingKey"}, http.StatusNotFound, http.StatusNotFound, `{"code":"missingKey"}`, false},
		{"nil", nil, http.StatusOK, http.StatusOK, "null", false},
		{"not serializable", make(chan int), http.StatusOK, http.StatusInternalServerError, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			n, err := WriteJSON(w, tt.data, tt.status)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	WriteNoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestNewHTTPClient(t *testing.T) {
	tests := []struct {
		address string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "http://localhost:8080", false},
		{"https://example.com/", "https://example.com", false},
		{"  ", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			client, err := NewHTTPClient(tt.address, time.Second)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, client.BaseURL)
		})
	}
}
