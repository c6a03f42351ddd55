package ports

import (
	"context"

	"github.com/renotari/powers-explorer/internal/domain"
)

// Port: a cache for computed light-travel plans, keyed by object pair.
// Implementations must treat the pair as unordered so both query
// orientations share one entry.
type TravelPlanCache interface {
	// Fetch a cached plan; the boolean reports a hit.
	Get(ctx context.Context, idA, idB string) (domain.LightTravelPlan, bool, error)
	// Store a plan for the pair.
	Put(ctx context.Context, idA, idB string, plan domain.LightTravelPlan) error
}
