package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"hr-platform-backend/internal/delivery/http/response"
	"hr-platform-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for per-IP rate limiting.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// in-memory fallback when Redis is unavailable
var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// Atomic increment with TTL set on first hit.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit limits requests per client IP over a fixed window, backed by
// Redis when configured, falling back to process-local counters otherwise.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := "rl:ip:" + c.ClientIP()

		var count int
		if rdb := redis.Client(); rdb != nil {
			result, err := rdb.Eval(c.Request.Context(), rateLimitLuaScript,
				[]string{key}, int(cfg.Window.Seconds())).Result()
			if err == nil {
				if n, ok := result.(int64); ok {
					count = int(n)
				}
			} else if err != goredis.Nil {
				count = incrInMemory(key, cfg.Window)
			}
		} else {
			count = incrInMemory(key, cfg.Window)
		}

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func incrInMemory(key string, window time.Duration) int {
	value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: time.Now().Add(window)})
	entry := value.(*rateLimitEntry)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if time.Now().After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = time.Now().Add(window)
	}
	entry.count++
	return entry.count
}
