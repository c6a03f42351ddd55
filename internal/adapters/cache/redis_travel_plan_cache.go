package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/renotari/powers-explorer/internal/domain"
)

// Redis-backed cache for computed light-travel plans. Keys are
// order-normalized so both orientations of a pair share one entry.
type RedisTravelPlanCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisTravelPlanCache(client *redis.Client, ttl time.Duration) *RedisTravelPlanCache {
	return &RedisTravelPlanCache{Client: client, TTL: ttl}
}

// planKey builds the unordered-pair cache key.
func planKey(idA, idB string) string {
	if idB < idA {
		idA, idB = idB, idA
	}
	return "travelplan:" + idA + "|" + idB
}

// Fetch a cached plan for the pair; the boolean reports a hit.
func (c *RedisTravelPlanCache) Get(ctx context.Context, idA, idB string) (domain.LightTravelPlan, bool, error) {
	if c.Client == nil {
		return domain.LightTravelPlan{}, false, errors.New("travel plan cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, planKey(idA, idB)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.LightTravelPlan{}, false, nil
	}
	if err != nil {
		return domain.LightTravelPlan{}, false, fmt.Errorf("get travel plan cache: %w", err)
	}

	var plan domain.LightTravelPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return domain.LightTravelPlan{}, false, fmt.Errorf("get travel plan cache: decode entry: %w", err)
	}

	return plan, true, nil
}

// Store a plan for the pair.
func (c *RedisTravelPlanCache) Put(ctx context.Context, idA, idB string, plan domain.LightTravelPlan) error {
	if c.Client == nil {
		return errors.New("travel plan cache: client is nil")
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("insert travel plan cache: encode entry: %w", err)
	}

	if err := c.Client.Set(ctx, planKey(idA, idB), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert travel plan cache: %w", err)
	}

	return nil
}
