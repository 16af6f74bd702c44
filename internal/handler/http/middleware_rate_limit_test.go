package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/mock"
	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

func TestWithRateLimit_RejectsBeyondBurst(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemStore(ctrl)
	items.EXPECT().SetSynchronizeKeychain(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	router := newRouter(t, items, func(c *config.StructuredConfig) {
		// a rate this low never refills during the test
		c.Server.RateLimit = 0.001
		c.Server.RateBurst = 2
	})

	statuses := make([]int, 0, 3)
	for range 3 {
		statuses = append(statuses, postJSON(t, router, RPCSetSynchronizeKeychain, models.SynchronizeRequest{}).Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, statuses)
}

func TestWithRateLimit_DisabledPassesThrough(t *testing.T) {
	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls++ })

	h := newTestHandler()
	for range 50 {
		h.withRateLimit(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	}
	assert.Equal(t, 50, calls)

	h.limiter = rate.NewLimiter(rate.Every(time.Hour), 1)
	rr := httptest.NewRecorder()
	h.withRateLimit(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	h.withRateLimit(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, 51, calls)
}
