package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustsBurst(t *testing.T) {
	bucket := NewTokenBucket(Policy{Burst: 3, Interval: time.Hour})

	for i := 0; i < 3; i++ {
		ok, wait := bucket.Allow()
		assert.True(t, ok)
		assert.Zero(t, wait)
	}

	ok, wait := bucket.Allow()
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))
	assert.LessOrEqual(t, wait, time.Hour)
}

func TestTokenBucketRefills(t *testing.T) {
	bucket := NewTokenBucket(Policy{Burst: 1, Interval: 10 * time.Millisecond})

	ok, _ := bucket.Allow()
	assert.True(t, ok)
	ok, _ = bucket.Allow()
	assert.False(t, ok)

	time.Sleep(25 * time.Millisecond)

	ok, _ = bucket.Allow()
	assert.True(t, ok)
	assert.LessOrEqual(t, bucket.Tokens(), 1)
}

func TestRateLimiterSeparatesSubjectsAndActions(t *testing.T) {
	rl := NewRateLimiter(map[string]Policy{
		ActionSendMessage: {Burst: 1, Interval: time.Hour},
		ActionAPI:         {Burst: 2, Interval: time.Hour},
	})

	ok, _ := rl.Allow("alice", ActionSendMessage)
	assert.True(t, ok)
	ok, _ = rl.Allow("alice", ActionSendMessage)
	assert.False(t, ok)

	ok, _ = rl.Allow("bob", ActionSendMessage)
	assert.True(t, ok, "buckets are per subject")

	ok, _ = rl.Allow("alice", ActionAPI)
	assert.True(t, ok, "buckets are per action")

	tokens, max := rl.Status("alice", ActionAPI)
	assert.Equal(t, 1, tokens)
	assert.Equal(t, 2, max)
}

func TestRateLimiterUnknownActionUsesFallback(t *testing.T) {
	rl := NewRateLimiter(map[string]Policy{ActionAPI: {Burst: 1, Interval: time.Hour}})

	ok, _ := rl.Allow("alice", "something_else")
	assert.True(t, ok)
	ok, _ = rl.Allow("alice", "something_else")
	assert.False(t, ok)
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(nil)
	rl.Allow("alice", ActionSendMessage)

	assert.Equal(t, 0, rl.Cleanup(time.Hour))
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, rl.Cleanup(time.Millisecond))

	tokens, max := rl.Status("alice", ActionSendMessage)
	assert.Zero(t, tokens)
	assert.Zero(t, max)
}

func TestPerMinute(t *testing.T) {
	p := PerMinute(60)
	assert.Equal(t, 60, p.Burst)
	assert.Equal(t, time.Second, p.Interval)

	assert.Equal(t, 1, PerMinute(0).Burst)
}
