package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterBlocksAtConfiguredLimit(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter(3, time.Hour)
	key := "203.0.113.7"
	now := time.Now().UTC()

	for attempt := 0; attempt < 2; attempt++ {
		limiter.recordFailure(key, now)
	}
	if limiter.blocked(key, now) {
		t.Fatal("expected limiter to allow attempts below the limit")
	}

	limiter.recordFailure(key, now)
	if !limiter.blocked(key, now) {
		t.Fatal("expected limiter to block at the limit")
	}
}

func TestAttemptLimiterForgetsFailuresOutsideWindow(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter(1, time.Hour)
	key := "203.0.113.7"
	now := time.Now().UTC()

	limiter.recordFailure(key, now.Add(-2*time.Hour))
	if limiter.blocked(key, now) {
		t.Fatal("expected stale failure to be discarded")
	}

	limiter.recordFailure(key, now.Add(-30*time.Minute))
	if !limiter.blocked(key, now) {
		t.Fatal("expected recent failure to count against the limit")
	}
}

func TestAttemptLimiterClearAffectsOnlyOneKey(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter(1, time.Hour)
	now := time.Now().UTC()

	limiter.recordFailure("a", now)
	limiter.recordFailure("b", now)
	limiter.clear("a")

	if limiter.blocked("a", now) {
		t.Fatal("expected cleared key to have no recent failures")
	}
	if !limiter.blocked("b", now) {
		t.Fatal("expected other keys to keep their failures")
	}
}
