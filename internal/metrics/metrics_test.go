package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest(t *testing.T) {
	m := NewMetricsWithRegistry(prometheus.NewRegistry())

	m.RecordRequest("http", "get_item", CodeOK, time.Millisecond)
	m.RecordRequest("http", "get_item", CodeOK, time.Millisecond)
	m.RecordRequest("grpc", "get_item", "missingKey", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("http", "get_item", CodeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("grpc", "get_item", "missingKey")))
}

func TestRecordOperation(t *testing.T) {
	m := NewMetricsWithRegistry(prometheus.NewRegistry())

	m.RecordOperation("set_item", CodeOK, time.Millisecond)
	m.RecordOperation("set_item", "osError", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("set_item", CodeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("set_item", "osError")))
}

func TestRecordKeysSwept_IgnoresZero(t *testing.T) {
	m := NewMetricsWithRegistry(prometheus.NewRegistry())

	m.RecordKeysSwept(0)
	m.RecordKeysSwept(3)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.keysSwept))
}

func TestRecordGC(t *testing.T) {
	m := NewMetricsWithRegistry(prometheus.NewRegistry())

	m.RecordGC(nil)
	m.RecordGC(errors.New("boom"))
	m.RecordGC(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.gcRunsTotal.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gcRunsTotal.WithLabelValues("false")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := NewMetrics()
	m.RecordOperation("get_item", CodeOK, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "secure_storage_item_operations_total")
	assert.Contains(t, string(body), "go_goroutines")
}
