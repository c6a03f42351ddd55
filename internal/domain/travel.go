package domain

// Represents the timing parameters for a light-speed traversal between
// two objects. A plan is derived once per comparison from a distance and
// the speed-of-light constant and is immutable planning data.
//
// When the real crossing takes longer than the configured animation
// ceiling, the animation is time-lapsed: it runs at the ceiling and
// SpeedMultiplier re-derives real elapsed time from animation time.
type LightTravelPlan struct {
	RealTimeSeconds     float64 `json:"real_time_seconds"`
	AnimationDurationMs float64 `json:"animation_duration_ms"`
	IsTimeLapsed        bool    `json:"is_time_lapsed"`
	// SpeedMultiplier is realTimeMs / animationMs; exactly 1 when the
	// plan is not time-lapsed, and always >= 1.
	SpeedMultiplier float64 `json:"speed_multiplier"`
}
