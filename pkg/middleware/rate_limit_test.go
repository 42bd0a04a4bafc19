package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func testRedis(t *testing.T) *redis.Client {
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func TestRateLimitMiddleware_KeysAuthenticatedCallersByUserID(t *testing.T) {
	rdb := testRedis(t)

	router := setupTestRouter()
	// Same order as the server: auth first, so the limiter sees user_id.
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Next()
	}, RateLimitMiddleware(rdb, 100, time.Minute))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.0.2.1:12345"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	ctx := context.Background()
	count, err := rdb.Exists(ctx, "rate_limit:/test:user-123").Result()
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = rdb.Exists(ctx, "rate_limit:/test:192.0.2.1").Result()
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestRateLimitMiddleware_KeysAnonymousCallersByClientIP(t *testing.T) {
	rdb := testRedis(t)

	router := setupTestRouter()
	router.Use(RateLimitMiddleware(rdb, 100, time.Minute))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.0.2.1:12345"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	count, err := rdb.Exists(context.Background(), "rate_limit:/test:192.0.2.1").Result()
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRateLimitMiddleware_BlocksOverLimit(t *testing.T) {
	rdb := testRedis(t)

	router := setupTestRouter()
	router.Use(RateLimitMiddleware(rdb, 2, time.Minute))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
