package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renotari/powers-explorer/internal/domain"
	"github.com/renotari/powers-explorer/internal/ports"
)

// ErrDistanceNotFound reports that no distance is recorded for the
// requested pair. Many pairs legitimately have none; callers branch on
// this routinely.
var ErrDistanceNotFound = errors.New("no recorded distance for object pair")

type CompareRequest struct {
	FromID      string
	ToID        string
	ScreenWidth float64
}

// ObjectView is one side of a comparison: the catalog object plus its
// renderable sizes and display label.
type ObjectView struct {
	Object domain.CosmicObject
	// ClampedPx is the diameter scaled against the partner object and
	// clamped for visibility.
	ClampedPx float64
	// ProportionalPx is the diameter as a linear fraction of the
	// rendered gap, preserving true relative proportions.
	ProportionalPx float64
	ScaleLabel     string
}

// Comparison is the full result of comparing two objects: sizes, the
// gap, and the light-speed traversal timing across it.
type Comparison struct {
	From          ObjectView
	To            ObjectView
	Distance      domain.DistanceRecord
	GapPx         float64
	DistanceLabel string
	Travel        domain.LightTravelPlan
	TravelLabel   string
}

// Compare runs the comparison pipeline for a named object pair: resolve
// both objects, look up their distance, derive screen sizes and labels,
// and plan the light-speed traversal.
func Compare(
	ctx context.Context,
	req CompareRequest,
	repo ports.ObjectRepository,
	index *domain.DistanceIndex,
	planner *LightTravelPlanner,
	scaler Scaler,
) (*Comparison, error) {
	if req.FromID == "" || req.ToID == "" {
		return nil, errors.New("compare: both object ids are required")
	}
	if req.ScreenWidth <= 0 {
		return nil, fmt.Errorf("compare: screen width must be positive, got %g", req.ScreenWidth)
	}

	from, ok, err := repo.GetObject(ctx, req.FromID)
	if err != nil {
		return nil, fmt.Errorf("compare: get object %q: %w", req.FromID, err)
	}
	if !ok {
		return nil, fmt.Errorf("compare: unknown object %q", req.FromID)
	}

	to, ok, err := repo.GetObject(ctx, req.ToID)
	if err != nil {
		return nil, fmt.Errorf("compare: get object %q: %w", req.ToID, err)
	}
	if !ok {
		return nil, fmt.Errorf("compare: unknown object %q", req.ToID)
	}

	rec, ok := index.Lookup(from.ObjectID, to.ObjectID)
	if !ok {
		return nil, fmt.Errorf("compare: %q <-> %q: %w", from.ObjectID, to.ObjectID, ErrDistanceNotFound)
	}

	plan, err := planner.Plan(rec.DistanceMeters)
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}

	// The gap is scaled against itself, so it saturates to the full
	// 70% band; both diameters stay linear relative to it.
	gapPx := RealToScreen(rec.DistanceMeters, rec.DistanceMeters, req.ScreenWidth*0.7)

	return &Comparison{
		From:          objectView(from, to, rec, req.ScreenWidth, scaler),
		To:            objectView(to, from, rec, req.ScreenWidth, scaler),
		Distance:      rec,
		GapPx:         gapPx,
		DistanceLabel: FormatScale(rec.DistanceMeters),
		Travel:        plan,
		TravelLabel:   FormatTime(plan.RealTimeSeconds),
	}, nil
}

func objectView(obj, partner domain.CosmicObject, rec domain.DistanceRecord, screenWidth float64, scaler Scaler) ObjectView {
	reference := partner.DiameterMeters
	if obj.DiameterMeters > reference {
		reference = obj.DiameterMeters
	}

	return ObjectView{
		Object:         obj,
		ClampedPx:      scaler.ScreenDiameter(obj.DiameterMeters, screenWidth, reference),
		ProportionalPx: ProportionalSize(obj.DiameterMeters, rec.DistanceMeters, screenWidth),
		ScaleLabel:     FormatScale(obj.DiameterMeters),
	}
}
