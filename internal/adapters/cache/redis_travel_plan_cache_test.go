package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/renotari/powers-explorer/internal/domain"
)

func testCache(t *testing.T) *RedisTravelPlanCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisTravelPlanCache(client, time.Hour)
}

func TestTravelPlanCacheMissThenHit(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "earth", "moon"); err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v, want miss", hit, err)
	}

	plan := domain.LightTravelPlan{
		RealTimeSeconds:     499.0,
		AnimationDurationMs: 10000,
		IsTimeLapsed:        true,
		SpeedMultiplier:     49.9,
	}
	if err := c.Put(ctx, "earth", "sun", plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, hit, err := c.Get(ctx, "earth", "sun")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit {
		t.Fatalf("expected hit after put")
	}
	if got != plan {
		t.Fatalf("got %+v, want %+v", got, plan)
	}
}

func TestTravelPlanCacheKeyIsOrderIndependent(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	plan := domain.LightTravelPlan{RealTimeSeconds: 1.282, AnimationDurationMs: 1282.2, SpeedMultiplier: 1}
	if err := c.Put(ctx, "moon", "earth", plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, hit, err := c.Get(ctx, "earth", "moon")
	if err != nil || !hit {
		t.Fatalf("reversed orientation: hit=%v err=%v, want hit", hit, err)
	}
	if got != plan {
		t.Fatalf("got %+v, want %+v", got, plan)
	}
}

func TestTravelPlanCacheNilClient(t *testing.T) {
	c := NewRedisTravelPlanCache(nil, time.Hour)
	ctx := context.Background()

	if _, _, err := c.Get(ctx, "a", "b"); err == nil {
		t.Fatalf("expected error for nil client")
	}
	if err := c.Put(ctx, "a", "b", domain.LightTravelPlan{}); err == nil {
		t.Fatalf("expected error for nil client")
	}
}
