package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"therewecome/models"
	"therewecome/services/guard"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type loaderFunc func(ctx context.Context, sid string) (models.Session, error)

func (f loaderFunc) Load(ctx context.Context, sid string) (models.Session, error) {
	return f(ctx, sid)
}

func TestSessionMiddlewareIssuesCookie(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(SessionMiddleware(loaderFunc(func(_ context.Context, sid string) (models.Session, error) {
		return models.Session{}, nil
	}), "sid", time.Hour))
	r.GET("/", func(c *gin.Context) {
		seen = SessionIDFrom(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddlewareKeepsValidCookie(t *testing.T) {
	sid := uuid.NewString()
	r := gin.New()
	r.Use(SessionMiddleware(loaderFunc(func(_ context.Context, got string) (models.Session, error) {
		assert.Equal(t, sid, got)
		return models.Session{Token: "tok", Role: models.RoleAdmin}, nil
	}), "sid", time.Hour))
	r.GET("/", func(c *gin.Context) {
		assert.Equal(t, models.RoleAdmin, SessionFrom(c).Role)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionMiddlewareTreatsLoadErrorAsSignedOut(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.Use(SessionMiddleware(loaderFunc(func(context.Context, string) (models.Session, error) {
		return models.Session{}, errors.New("redis down")
	}), "sid", time.Hour))
	r.GET("/admin", RequireRole(guard.AdminRule, models.ViewAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies([]string{"192.0.2.1"}))
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.Header.Set("X-Forwarded-For", "198.51.100.2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(nil))
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", uuid.NewString())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterStoreEvictsIdleClients(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(10)
	store.now = func() time.Time { return now }
	store.lastSweep = now

	store.getLimiter("203.0.113.1")
	store.getLimiter("203.0.113.2")
	require.Len(t, store.limiters, 2)

	now = now.Add(limiterIdleTTL / 2)
	store.getLimiter("203.0.113.2")

	now = now.Add(limiterIdleTTL / 2)
	store.getLimiter("203.0.113.3")
	assert.Len(t, store.limiters, 2)
	assert.NotContains(t, store.limiters, "203.0.113.1")
	assert.Contains(t, store.limiters, "203.0.113.2")
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
}

func TestRequestLogCarriesSessionID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sid := uuid.NewString()

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.Use(SessionMiddleware(loaderFunc(func(context.Context, string) (models.Session, error) {
		return models.Session{}, nil
	}), "sid", time.Hour))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-7")
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("Request handled").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-7", fields["requestID"])
	assert.Equal(t, sid, fields["sessionID"])
}
