package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	ActionSendMessage = "send_message"
	ActionAPI         = "api"
)

// Policy describes one bucket shape: Burst tokens, refilled one per Interval.
type Policy struct {
	Burst    int
	Interval time.Duration
}

// PerMinute spreads n tokens evenly over a minute.
func PerMinute(n int) Policy {
	if n <= 0 {
		n = 1
	}
	return Policy{Burst: n, Interval: time.Minute / time.Duration(n)}
}

// DefaultPolicies mirror the chat limits: ten messages a minute, sixty API calls.
func DefaultPolicies() map[string]Policy {
	return map[string]Policy{
		ActionSendMessage: {Burst: 10, Interval: 6 * time.Second},
		ActionAPI:         PerMinute(60),
	}
}

// TokenBucket wraps a rate.Limiter and remembers when it was last used so
// idle buckets can be dropped.
type TokenBucket struct {
	limiter   *rate.Limiter
	maxTokens int
	lastUsed  time.Time
	mutex     sync.Mutex
}

func NewTokenBucket(p Policy) *TokenBucket {
	limit := rate.Inf
	if p.Interval > 0 {
		limit = rate.Every(p.Interval)
	}
	return &TokenBucket{
		limiter:   rate.NewLimiter(limit, p.Burst),
		maxTokens: p.Burst,
		lastUsed:  time.Now(),
	}
}

// Allow consumes a token. When none is left it returns the wait until the next refill.
func (tb *TokenBucket) Allow() (bool, time.Duration) {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := time.Now()
	tb.lastUsed = now

	r := tb.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, 0
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (tb *TokenBucket) Tokens() int {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()
	return int(math.Floor(tb.limiter.TokensAt(time.Now())))
}

func (tb *TokenBucket) idleSince(now time.Time) time.Duration {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()
	return now.Sub(tb.lastUsed)
}

// RateLimiter keeps one bucket per subject and action.
type RateLimiter struct {
	policies map[string]Policy
	fallback Policy
	buckets  map[string]*TokenBucket
	mutex    sync.RWMutex
}

func NewRateLimiter(policies map[string]Policy) *RateLimiter {
	if policies == nil {
		policies = DefaultPolicies()
	}
	fallback, ok := policies[ActionAPI]
	if !ok {
		fallback = PerMinute(20)
	}
	return &RateLimiter{
		policies: policies,
		fallback: fallback,
		buckets:  make(map[string]*TokenBucket),
	}
}

func (rl *RateLimiter) Allow(subject, action string) (bool, time.Duration) {
	key := subject + ":" + action

	rl.mutex.RLock()
	bucket, exists := rl.buckets[key]
	rl.mutex.RUnlock()

	if !exists {
		rl.mutex.Lock()
		if bucket, exists = rl.buckets[key]; !exists {
			policy, ok := rl.policies[action]
			if !ok {
				policy = rl.fallback
			}
			bucket = NewTokenBucket(policy)
			rl.buckets[key] = bucket
		}
		rl.mutex.Unlock()
	}

	return bucket.Allow()
}

// Status returns the remaining and maximum tokens, or zeros for an unknown key.
func (rl *RateLimiter) Status(subject, action string) (tokens int, maxTokens int) {
	rl.mutex.RLock()
	bucket, exists := rl.buckets[subject+":"+action]
	rl.mutex.RUnlock()

	if !exists {
		return 0, 0
	}
	return bucket.Tokens(), bucket.maxTokens
}

// Cleanup drops buckets unused for longer than idle.
func (rl *RateLimiter) Cleanup(idle time.Duration) int {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	removed := 0
	for key, bucket := range rl.buckets {
		if bucket.idleSince(now) > idle {
			delete(rl.buckets, key)
			removed++
		}
	}
	return removed
}

// StartCleanupRoutine runs Cleanup every interval until ctx is done.
func (rl *RateLimiter) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.Cleanup(time.Hour)
			case <-ctx.Done():
				return
			}
		}
	}()
}
