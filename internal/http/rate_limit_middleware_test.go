package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func newRateLimitedRouter(ctx context.Context, rps float64, burst int) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(RateLimitMiddleware(ctx, rps, burst, logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func doRequestFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := newRateLimitedRouter(ctx, 10.0, 20)

	for i := 0; i < 5; i++ {
		w := doRequestFrom(router, "192.0.2.1:1234")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_BlocksRequestsExceedingLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := newRateLimitedRouter(ctx, 1.0, 2)

	for i := 0; i < 2; i++ {
		w := doRequestFrom(router, "192.0.2.1:1234")
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequestFrom(router, "192.0.2.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestRateLimitMiddleware_IndependentLimitsPerIP(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := newRateLimitedRouter(ctx, 1.0, 1)

	assert.Equal(t, http.StatusOK, doRequestFrom(router, "192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequestFrom(router, "192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusOK, doRequestFrom(router, "192.0.2.2:1234").Code)
}

func TestRateLimiterStore_EvictBefore(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}

	first := store.getLimiter("192.0.2.1")
	assert.Same(t, first, store.getLimiter("192.0.2.1"))

	store.evictBefore(time.Now().Add(time.Minute))

	_, ok := store.limiters.Load("192.0.2.1")
	assert.False(t, ok)
}

func TestRateLimitMiddleware_CleanupStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	_ = newRateLimitedRouter(ctx, 1.0, 1)
	cancel()
}
