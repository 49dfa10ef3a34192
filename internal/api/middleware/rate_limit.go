package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"siakad/backend/pkg/redis"
	"siakad/backend/pkg/response"
)

// RateLimit throttles by client IP and route using a Redis sliding
// window. A nil or failing Redis degrades to letting requests through,
// same policy as JWTAuth's blacklist check.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "Terlalu banyak permintaan, coba lagi nanti")
			c.Abort()
			return
		}

		c.Next()
	}
}
