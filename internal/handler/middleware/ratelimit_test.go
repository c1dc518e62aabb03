//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"villa-booking/internal/handler/middleware"
	"villa-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bookings", middleware.NewRateLimiter(cfg).Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func postFrom(router *gin.Engine, remoteAddr string) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.RemoteAddr = remoteAddr
	rec := nethttptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter(t *testing.T) {
	t.Run("rejects requests beyond the burst per client", func(t *testing.T) {
		router := newLimitedRouter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2})

		assert.Equal(t, http.StatusCreated, postFrom(router, "10.0.0.1:1000").Code)
		assert.Equal(t, http.StatusCreated, postFrom(router, "10.0.0.1:1001").Code)

		rec := postFrom(router, "10.0.0.1:1002")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get("Retry-After"))

		assert.Equal(t, http.StatusCreated, postFrom(router, "10.0.0.2:1000").Code, "other clients keep their own bucket")
	})

	t.Run("disabled limiter lets everything through", func(t *testing.T) {
		router := newLimitedRouter(config.RateLimitConfig{Enabled: false, RPS: 0.001, Burst: 1})

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusCreated, postFrom(router, "10.0.0.1:1000").Code)
		}
	})
}
