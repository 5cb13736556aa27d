package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestIPRateLimiter_Middleware(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(0.001), 2)
	t.Cleanup(l.Stop)

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(remote string) int {
		r := httptest.NewRequest(http.MethodPost, "/token", nil)
		r.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("192.0.2.1:1000"))
	assert.Equal(t, http.StatusOK, call("192.0.2.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("192.0.2.1:1002"))

	// buckets are per address
	assert.Equal(t, http.StatusOK, call("192.0.2.2:1000"))
}

func TestIPRateLimiter_EvictIdle(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(10), 1)
	t.Cleanup(l.Stop)

	l.GetLimiter("192.0.2.1").Allow()
	l.GetLimiter("192.0.2.2")

	// one second later both buckets have refilled
	removed := l.evictIdle(time.Now().Add(time.Second))
	assert.Equal(t, 2, removed)
	assert.Empty(t, l.limits)
}
