package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DioGolang/GoEvents/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := NewRateLimiter(ctx, RateLimiterConfig{RequestsPerSecond: 1, Burst: 1, CleanupInterval: time.Minute, ClientTimeout: time.Minute})
	h := l.Handler(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.2"))
}

func TestIPRateLimiter_EvictIdle(t *testing.T) {
	l := NewRateLimiter(context.Background(), RateLimiterConfig{RequestsPerSecond: 1, Burst: 1, ClientTimeout: time.Second})
	l.getVisitor("10.0.0.1")

	l.evictIdle(time.Now().Add(2 * time.Second))

	assert.Empty(t, l.visitors)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")

	assert.Equal(t, "1.1.1.1", clientIP(req))
}
