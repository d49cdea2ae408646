package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"auth-gateway/internal/logger"
)

// Counter counts hits for a key within a fixed window.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter implements Counter on a shared redis instance so the
// limit holds across gateway replicas.
type RedisCounter struct {
	client *goredis.Client
}

func NewRedisCounter(client *goredis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Incr(
	ctx context.Context,
	key string,
	window time.Duration,
) (int64, error) {

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return incr.Val(), nil
}

// RateLimit rejects callers that exceed limit hits per window, keyed
// by route and client IP. A counter outage fails open: credential
// endpoints stay usable when redis is down.
func RateLimit(counter Counter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.FullPath() + ":" + c.ClientIP()

		n, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			logger.Warn("rate limit counter unavailable", map[string]any{
				"error": err.Error(),
			})
			c.Next()
			return
		}

		if n > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
