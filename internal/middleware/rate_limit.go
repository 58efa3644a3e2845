package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/multilingual/internal/domain/dto"
	"github.com/guttosm/multilingual/internal/i18n"
)

const (
	// defaultNumShards is the default number of shards for the rate limiter.
	defaultNumShards = 16
)

// visitor tracks rate limit state for a single client IP.
type visitor struct {
	tokens    int
	lastReset time.Time
}

// rateLimiterShard is a single shard of the rate limiter.
type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a fixed-window limiter keyed by client IP. Visitors are
// spread across shards to reduce lock contention.
type RateLimiter struct {
	shards    []*rateLimiterShard
	numShards int
	rate      int
	window    time.Duration
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// NewRateLimiter creates a rate limiter with the default shard count.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a rate limiter with a custom shard count and
// starts its cleanup loop. Call Stop to end it.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{
			visitors: make(map[string]*visitor),
		}
	}

	rl := &RateLimiter{
		shards:    shards,
		numShards: numShards,
		rate:      rate,
		window:    window,
		stopCh:    make(chan struct{}),
	}

	go rl.cleanup()
	return rl
}

// getShard returns the shard for the given identifier using FNV hash.
func (rl *RateLimiter) getShard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(rl.numShards)]
}

func (rl *RateLimiter) checkRateLimit(identifier string) (allowed bool, remaining int) {
	shard := rl.getShard(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	v, exists := shard.visitors[identifier]
	now := time.Now()

	if !exists || now.Sub(v.lastReset) > rl.window {
		shard.visitors[identifier] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return true, rl.rate - 1
	}

	if v.tokens <= 0 {
		return false, 0
	}

	v.tokens--
	return true, v.tokens
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.checkRateLimit(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			locale := i18n.GetLocale(c)
			retryAfter := strconv.Itoa(int(rl.window.Seconds()))
			c.Header("Retry-After", retryAfter)
			errorResp := dto.NewError(dto.ErrCodeRateLimit, i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, locale)).
				WithRequestID(GetRequestID(c)).
				WithDetail("retry_after", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
			return
		}

		c.Next()
	}
}

// cleanup periodically removes expired visitors from all shards.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanupExpired removes visitors idle for more than two windows.
func (rl *RateLimiter) cleanupExpired() {
	now := time.Now()
	threshold := rl.window * 2

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, v := range shard.visitors {
			if now.Sub(v.lastReset) > threshold {
				delete(shard.visitors, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop shuts down the cleanup loop. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns current rate limiter statistics.
func (rl *RateLimiter) Stats() (totalVisitors int, perShard []int) {
	perShard = make([]int, rl.numShards)
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.visitors)
		totalVisitors += perShard[i]
		shard.mu.Unlock()
	}
	return totalVisitors, perShard
}
