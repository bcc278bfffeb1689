package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"bdgc-website/internal/delivery/http/response"
	"bdgc-website/pkg/apperror"
	"bdgc-website/pkg/metrics"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Scope names the limiter in logs and metrics
	Scope string
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
}

// GlobalRateLimitConfig applies to every route.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Scope:      "global",
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "bdgc:rl:ip:",
		FailClosed: false, // Fail open for availability
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// ContactRateLimitConfig is the stricter limit on quote requests.
func ContactRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Scope:      "contact",
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "bdgc:rl:contact:",
		FailClosed: false,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// Atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns {count, ttl}.
var rateLimitScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// RateLimiter counts requests in Redis when a client is given and in
// process memory otherwise, or when Redis errors and the config fails open.
type RateLimiter struct {
	redis  goredis.UniversalClient
	memory *memoryStore
	logger *slog.Logger
}

// NewRateLimiter accepts a nil client.
func NewRateLimiter(client goredis.UniversalClient, logger *slog.Logger) *RateLimiter {
	if logger == nil {
		logger = slog.Default()
	}
	return &RateLimiter{
		redis:  client,
		memory: newMemoryStore(5 * time.Minute),
		logger: logger,
	}
}

// Middleware enforces config.
func (rl *RateLimiter) Middleware(config RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time

		if rl.redis != nil {
			var err error
			count, resetAt, err = rl.checkRedis(c.Request.Context(), fullKey, config)
			if err != nil {
				rl.logger.Warn("rate limit store unavailable", "scope", config.Scope, "error", err)
				if config.FailClosed {
					c.Error(apperror.Unavailable("Service temporarily unavailable. Please try again.", err))
					c.Abort()
					return
				}
				count, resetAt = rl.memory.hit(fullKey, config.Window, now)
			}
		} else {
			count, resetAt = rl.memory.hit(fullKey, config.Window, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			metrics.IncRateLimited(config.Scope)
			rl.logger.Warn("rate limit triggered",
				"scope", config.Scope,
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"request_id", response.RequestID(c),
			)

			c.Error(apperror.TooManyRequests("Too many requests. Please try again later."))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

func (rl *RateLimiter) checkRedis(ctx context.Context, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := rateLimitScript.Run(ctx, rl.redis, []string{key}, ttlSeconds).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit script failed: %w", err)
	}
	if len(result) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result %v", result)
	}

	resetAt := time.Now().Add(time.Duration(result[1]) * time.Second)
	return int(result[0]), resetAt, nil
}

type memoryEntry struct {
	count   int
	resetAt time.Time
}

// memoryStore is a fixed window counter. Expired entries are swept inline
// at most once per sweepEvery.
type memoryStore struct {
	mu         sync.Mutex
	entries    map[string]*memoryEntry
	sweepEvery time.Duration
	lastSweep  time.Time
}

func newMemoryStore(sweepEvery time.Duration) *memoryStore {
	return &memoryStore{entries: make(map[string]*memoryEntry), sweepEvery: sweepEvery}
}

func (s *memoryStore) hit(key string, window time.Duration, now time.Time) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= s.sweepEvery {
		for k, e := range s.entries {
			if now.After(e.resetAt) {
				delete(s.entries, k)
			}
		}
		s.lastSweep = now
	}

	e, ok := s.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &memoryEntry{resetAt: now.Add(window)}
		s.entries[key] = e
	}
	e.count++
	return e.count, e.resetAt
}
