package services

import (
	"fmt"

	"github.com/renotari/powers-explorer/internal/domain"
)

// LightTravelPlanner derives traversal timing from a distance and the
// speed of light. Unlike the sizing functions, which silently clamp
// adversarial-but-legal rendering inputs, the planner fails loudly on
// non-positive inputs: it encodes a physical law with no valid zero or
// negative domain, and a silent degenerate plan would lie about physics.
type LightTravelPlanner struct {
	speedOfLight   float64
	maxAnimationMs float64
}

func NewLightTravelPlanner(speedOfLight, maxAnimationMs float64) (*LightTravelPlanner, error) {
	if speedOfLight <= 0 {
		return nil, fmt.Errorf("light travel planner: speed of light must be positive, got %g", speedOfLight)
	}
	if maxAnimationMs <= 0 {
		return nil, fmt.Errorf("light travel planner: animation cap must be positive, got %g ms", maxAnimationMs)
	}
	return &LightTravelPlanner{
		speedOfLight:   speedOfLight,
		maxAnimationMs: maxAnimationMs,
	}, nil
}

// Plan computes the real light-travel time for the given distance and
// caps the animation duration at the configured ceiling. Guarantees:
// AnimationDurationMs <= cap, SpeedMultiplier >= 1, and the multiplier
// is exactly 1 iff the plan is not time-lapsed.
func (p *LightTravelPlanner) Plan(distanceMeters float64) (domain.LightTravelPlan, error) {
	if distanceMeters <= 0 {
		return domain.LightTravelPlan{}, fmt.Errorf("light travel plan: distance must be positive, got %g m", distanceMeters)
	}

	realTimeSeconds := distanceMeters / p.speedOfLight
	realTimeMs := realTimeSeconds * 1000

	plan := domain.LightTravelPlan{
		RealTimeSeconds:     realTimeSeconds,
		AnimationDurationMs: realTimeMs,
		SpeedMultiplier:     1,
	}

	if realTimeMs > p.maxAnimationMs {
		plan.AnimationDurationMs = p.maxAnimationMs
		plan.IsTimeLapsed = true
		plan.SpeedMultiplier = realTimeMs / p.maxAnimationMs
	}

	return plan, nil
}
