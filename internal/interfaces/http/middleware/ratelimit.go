package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"ticketdesk/internal/shared/utils"
)

// RateLimiter guards the credential endpoints against brute-force
// attempts with a fixed-window counter in redis. Keying on client IP
// keeps the count shared across service instances.
type RateLimiter struct {
	redisClient *redis.Client
	limit       int
	window      time.Duration
}

// NewRateLimiter allows limit requests per window per client IP.
func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		limit:       limit,
		window:      window,
	}
}

func (rl *RateLimiter) bucketKey(clientIP string, now time.Time) string {
	bucket := now.Unix() / int64(rl.window.Seconds())
	return fmt.Sprintf("ratelimit:auth:%s:%d", clientIP, bucket)
}

// Limit returns the enforcing middleware. Redis outages fail open: a
// dead counter must not take authentication down with it.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := rl.bucketKey(c.ClientIP(), time.Now())

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}

		// First hit in the window owns setting the TTL.
		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
