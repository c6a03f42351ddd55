package services

import (
	"math"
	"testing"
)

func TestLightTravelPlanEarthToMoonIsNotLapsed(t *testing.T) {
	planner, err := NewLightTravelPlanner(299792458, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan, err := planner.Plan(384400000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(plan.RealTimeSeconds-1.282) > 0.001 {
		t.Fatalf("real time = %g s, want ~1.282", plan.RealTimeSeconds)
	}
	if plan.IsTimeLapsed {
		t.Fatalf("moon crossing fits the cap and must not be time-lapsed")
	}
	if math.Abs(plan.AnimationDurationMs-1282) > 1 {
		t.Fatalf("animation = %g ms, want ~1282", plan.AnimationDurationMs)
	}
	if plan.SpeedMultiplier != 1 {
		t.Fatalf("multiplier = %g, want exactly 1 when not lapsed", plan.SpeedMultiplier)
	}
}

func TestLightTravelPlanEarthToSunIsLapsed(t *testing.T) {
	planner, _ := NewLightTravelPlanner(299792458, 10000)

	plan, err := planner.Plan(1.496e11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(plan.RealTimeSeconds-499.0) > 0.1 {
		t.Fatalf("real time = %g s, want ~499.0", plan.RealTimeSeconds)
	}
	if !plan.IsTimeLapsed {
		t.Fatalf("sun crossing exceeds the cap and must be time-lapsed")
	}
	if plan.AnimationDurationMs != 10000 {
		t.Fatalf("animation = %g ms, want exactly the 10000 ms cap", plan.AnimationDurationMs)
	}
	if math.Abs(plan.SpeedMultiplier-49.9) > 0.1 {
		t.Fatalf("multiplier = %g, want ~49.9", plan.SpeedMultiplier)
	}
}

func TestLightTravelPlanInvariants(t *testing.T) {
	planner, _ := NewLightTravelPlanner(299792458, 10000)

	for _, d := range []float64{1, 384400000, 1.496e11, 1e26} {
		plan, err := planner.Plan(d)
		if err != nil {
			t.Fatalf("distance %g: unexpected error: %v", d, err)
		}

		if plan.AnimationDurationMs > 10000 {
			t.Errorf("distance %g: animation %g ms exceeds cap", d, plan.AnimationDurationMs)
		}
		if plan.SpeedMultiplier < 1 {
			t.Errorf("distance %g: multiplier %g below 1", d, plan.SpeedMultiplier)
		}
		if (plan.SpeedMultiplier == 1) == plan.IsTimeLapsed {
			t.Errorf("distance %g: multiplier %g inconsistent with lapse flag %v", d, plan.SpeedMultiplier, plan.IsTimeLapsed)
		}
	}
}

func TestLightTravelPlanRejectsNonPositiveDistance(t *testing.T) {
	planner, _ := NewLightTravelPlanner(299792458, 10000)

	if _, err := planner.Plan(0); err == nil {
		t.Fatalf("expected error for zero distance")
	}
	if _, err := planner.Plan(-384400000); err == nil {
		t.Fatalf("expected error for negative distance")
	}
}

func TestLightTravelPlannerRejectsInvalidConfiguration(t *testing.T) {
	if _, err := NewLightTravelPlanner(0, 10000); err == nil {
		t.Fatalf("expected error for zero speed of light")
	}
	if _, err := NewLightTravelPlanner(299792458, 0); err == nil {
		t.Fatalf("expected error for zero animation cap")
	}
	if _, err := NewLightTravelPlanner(-1, -1); err == nil {
		t.Fatalf("expected error for negative configuration")
	}
}
