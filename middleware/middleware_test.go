package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locker-booking/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLimiter(limit int, window time.Duration, now *time.Time) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      func() time.Time { return *now },
		stopCh:   make(chan struct{}),
	}
	return rl
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 3, 13, 10, 0, 0, 0, time.UTC)
	rl := newLimiter(2, 15*time.Minute, &now)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "keys are counted separately")

	now = now.Add(15*time.Minute + time.Second)
	assert.True(t, rl.Allow("10.0.0.1"), "the window has passed")
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2025, 3, 13, 10, 0, 0, 0, time.UTC)
	rl := newLimiter(5, time.Minute, &now)

	rl.Allow("old")
	now = now.Add(45 * time.Second)
	rl.Allow("fresh")
	now = now.Add(30 * time.Second)

	rl.Cleanup()
	_, hasOld := rl.requests["old"]
	_, hasFresh := rl.requests["fresh"]
	assert.False(t, hasOld)
	assert.True(t, hasFresh)
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	t.Cleanup(rl.Stop)

	r := gin.New()
	r.POST("/users", rl.Middleware("slow down"), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", nil))
		return w
	}

	assert.Equal(t, http.StatusCreated, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"msg":"slow down"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(logger.Discard()))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	minted := w.Header().Get(RequestIDHeader)
	require.Len(t, minted, 36)
	assert.Equal(t, minted, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.Discard()))
	r.GET("/", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Internal server error"}`, w.Body.String())
}
