package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const submitGuardTTL = 30 * time.Second

// LockClient is the slice of the Redis API the submit guard needs.
// *redis.Client satisfies it.
type LockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SubmitGuardMiddleware blocks concurrent duplicate submissions of the
// same wizard draft. The first request takes a short-lived Redis lock
// keyed by draft ID; overlapping retries get a 409 instead of racing the
// backend. The backend's own Idempotency-Key handling covers retries
// after the lock expires.
func SubmitGuardMiddleware(client LockClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		draftID := c.Param("id")
		if draftID == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "submitlock:" + draftID

		ok, err := client.SetNX(ctx, key, "1", submitGuardTTL).Result()
		if err != nil {
			// Redis down: let the request through, the backend dedupes.
			log.Printf("submit guard unavailable: %v", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "a submission for this draft is already in progress",
			})
			return
		}

		c.Next()

		// Release with a detached context: if the client disconnected
		// mid-submit the request context is already canceled, and the
		// lock must not linger for the full TTL.
		if err := client.Del(context.WithoutCancel(ctx), key).Err(); err != nil {
			log.Printf("submit guard release failed: %v", err)
		}
	}
}
