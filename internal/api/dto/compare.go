package dto

type CompareRequest struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	ScreenWidth float64 `json:"screen_width"`
}

type ObjectViewResponse struct {
	ObjectID       string  `json:"object_id"`
	Name           string  `json:"name"`
	Color          string  `json:"color"`
	DiameterMeters float64 `json:"diameter_meters"`
	ClampedPx      float64 `json:"clamped_px"`
	ProportionalPx float64 `json:"proportional_px"`
	ScaleLabel     string  `json:"scale_label"`
}

type TravelPlanResponse struct {
	RealTimeSeconds     float64 `json:"real_time_seconds"`
	AnimationDurationMs float64 `json:"animation_duration_ms"`
	IsTimeLapsed        bool    `json:"is_time_lapsed"`
	SpeedMultiplier     float64 `json:"speed_multiplier"`
	TravelLabel         string  `json:"travel_label"`
}

type CompareResponse struct {
	From           ObjectViewResponse `json:"from"`
	To             ObjectViewResponse `json:"to"`
	DistanceMeters float64            `json:"distance_meters"`
	GapPx          float64            `json:"gap_px"`
	DistanceLabel  string             `json:"distance_label"`
	Travel         TravelPlanResponse `json:"travel"`
}

type TravelRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type TravelResponse struct {
	From           string             `json:"from"`
	To             string             `json:"to"`
	DistanceMeters float64            `json:"distance_meters"`
	Plan           TravelPlanResponse `json:"plan"`
}
