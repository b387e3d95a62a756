package providers

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_TryConsume(t *testing.T) {
	r := NewRateLimiter(60)

	// A fresh limiter starts with a full bucket.
	for i := 0; i < 60; i++ {
		if !r.TryConsume() {
			t.Fatalf("TryConsume() = false at token %d", i)
		}
	}
	if r.TryConsume() {
		t.Error("TryConsume() = true with empty bucket")
	}
}

func TestRateLimiter_WaitRespectsContext(t *testing.T) {
	r := NewRateLimiter(1)
	if !r.TryConsume() {
		t.Fatal("expected initial token")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := r.Wait(ctx); err == nil {
		t.Error("expected context deadline error from Wait")
	}
}

func TestRateLimiter_Status(t *testing.T) {
	r := NewRateLimiter(10)
	r.TryConsume()

	status := r.Status()
	if status.TokensLimit != 10 {
		t.Errorf("TokensLimit = %d, want 10", status.TokensLimit)
	}
	if status.TotalConsumed != 1 {
		t.Errorf("TotalConsumed = %d, want 1", status.TotalConsumed)
	}
}
