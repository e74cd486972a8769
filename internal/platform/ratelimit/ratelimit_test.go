package ratelimit

import (
	"testing"
	"time"
)

func TestTokenBucketConsumesCapacity(t *testing.T) {
	t.Parallel()

	bucket := NewTokenBucket(3, time.Second)
	for i := 0; i < 3; i++ {
		if !bucket.Allow() {
			t.Fatalf("expected request %d to be allowed", i+1)
		}
	}
	if bucket.Allow() {
		t.Fatal("expected empty bucket to deny")
	}
}

func TestTokenBucketRefillsPerInterval(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	bucket := newTokenBucket(10, 6*time.Second, func() time.Time { return now })

	if !bucket.AllowN(10) {
		t.Fatal("expected full bucket to allow capacity burst")
	}
	if bucket.Allow() {
		t.Fatal("expected empty bucket to deny")
	}

	now = now.Add(5 * time.Second)
	if bucket.Allow() {
		t.Fatal("expected no token before a full interval elapsed")
	}

	now = now.Add(time.Second)
	if !bucket.Allow() {
		t.Fatal("expected one token after a full interval")
	}
	if bucket.Allow() {
		t.Fatal("expected only one token refilled")
	}
}

func TestTokenBucketKeepsPartialIntervalProgress(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	bucket := newTokenBucket(2, 10*time.Second, func() time.Time { return now })
	bucket.AllowN(2)

	// 15s grants one token and leaves 5s of progress toward the next.
	now = now.Add(15 * time.Second)
	if !bucket.Allow() {
		t.Fatal("expected one token after 15s")
	}
	now = now.Add(5 * time.Second)
	if !bucket.Allow() {
		t.Fatal("expected partial progress to carry into the next interval")
	}
}

func TestTokenBucketCapsAtCapacity(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	bucket := newTokenBucket(2, time.Second, func() time.Time { return now })

	now = now.Add(time.Minute)
	if !bucket.AllowN(2) {
		t.Fatal("expected refilled bucket to allow capacity burst")
	}
	if bucket.Allow() {
		t.Fatal("expected refill to cap at capacity")
	}
}
