package services

import (
	"context"
	"fmt"
	"log"

	"github.com/renotari/powers-explorer/internal/domain"
	"github.com/renotari/powers-explorer/internal/ports"
)

// PlanTravel resolves the distance for a pair and returns its light
// travel plan, consulting the cache first when one is wired. Cache
// failures degrade to recomputation; the plan is pure math and the
// cache only exists to skip repeat work across sessions.
func PlanTravel(
	ctx context.Context,
	fromID, toID string,
	index *domain.DistanceIndex,
	planner *LightTravelPlanner,
	cache ports.TravelPlanCache,
) (domain.LightTravelPlan, domain.DistanceRecord, error) {
	rec, ok := index.Lookup(fromID, toID)
	if !ok {
		return domain.LightTravelPlan{}, domain.DistanceRecord{}, fmt.Errorf(
			"plan travel: %q <-> %q: %w", fromID, toID, ErrDistanceNotFound,
		)
	}

	if cache != nil {
		plan, hit, err := cache.Get(ctx, fromID, toID)
		if err != nil {
			log.Printf("travel plan cache get failed from=%q to=%q err=%v", fromID, toID, err)
		} else if hit {
			return plan, rec, nil
		}
	}

	plan, err := planner.Plan(rec.DistanceMeters)
	if err != nil {
		return domain.LightTravelPlan{}, domain.DistanceRecord{}, fmt.Errorf("plan travel: %w", err)
	}

	if cache != nil {
		if err := cache.Put(ctx, fromID, toID, plan); err != nil {
			log.Printf("travel plan cache put failed from=%q to=%q err=%v", fromID, toID, err)
		}
	}

	return plan, rec, nil
}
