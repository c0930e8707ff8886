package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/formulalab/backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware limits evaluation requests per client IP using a
// fixed one-minute window counter in Redis. Without Redis, or when the
// counter cannot be read, requests pass through.
func RateLimitMiddleware(rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || cfg.RateLimitPerMinute <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("rate:%s:%d", c.ClientIP(), time.Now().Unix()/60)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("[RATELIMIT] Counter increment failed: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			// First hit in this window owns the expiry
			rdb.Expire(ctx, key, 2*time.Minute)
		}

		if count > int64(cfg.RateLimitPerMinute) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": 60 - time.Now().Unix()%60,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
