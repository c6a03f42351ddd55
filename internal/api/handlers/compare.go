package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/renotari/powers-explorer/internal/api/dto"
	"github.com/renotari/powers-explorer/internal/domain"
	"github.com/renotari/powers-explorer/internal/ports"
	"github.com/renotari/powers-explorer/internal/services"
)

// CompareHandler runs the comparison pipeline over the loaded catalog.
type CompareHandler struct {
	Repo      ports.ObjectRepository
	Index     *domain.DistanceIndex
	Planner   *services.LightTravelPlanner
	Scaler    services.Scaler
	PlanCache ports.TravelPlanCache
}

// Compare resolves a pair of objects and returns their renderable
// sizes, gap, labels, and light-travel plan.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CompareRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	if req.From == "" || req.To == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}
	if req.ScreenWidth <= 0 {
		writeError(w, r, http.StatusBadRequest, "screen_width must be positive")
		return
	}

	svcReq := services.CompareRequest{
		FromID:      req.From,
		ToID:        req.To,
		ScreenWidth: req.ScreenWidth,
	}

	cmp, err := services.Compare(r.Context(), svcReq, h.Repo, h.Index, h.Planner, h.Scaler)
	if errors.Is(err, services.ErrDistanceNotFound) {
		writeError(w, r, http.StatusNotFound, "no recorded distance for pair")
		return
	}
	if err != nil {
		log.Printf("compare failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.CompareResponse{
		From:           objectViewResponse(cmp.From),
		To:             objectViewResponse(cmp.To),
		DistanceMeters: cmp.Distance.DistanceMeters,
		GapPx:          cmp.GapPx,
		DistanceLabel:  cmp.DistanceLabel,
		Travel:         travelPlanResponse(cmp.Travel, cmp.TravelLabel),
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Travel returns the light-travel plan for a pair, serving from the
// plan cache when possible.
func (h *CompareHandler) Travel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TravelRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	if req.From == "" || req.To == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	plan, rec, err := services.PlanTravel(r.Context(), req.From, req.To, h.Index, h.Planner, h.PlanCache)
	if errors.Is(err, services.ErrDistanceNotFound) {
		writeError(w, r, http.StatusNotFound, "no recorded distance for pair")
		return
	}
	if err != nil {
		log.Printf("plan travel failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TravelResponse{
		From:           req.From,
		To:             req.To,
		DistanceMeters: rec.DistanceMeters,
		Plan:           travelPlanResponse(plan, services.FormatTime(plan.RealTimeSeconds)),
	}

	writeJSON(w, r, http.StatusOK, res)
}

func objectViewResponse(v services.ObjectView) dto.ObjectViewResponse {
	return dto.ObjectViewResponse{
		ObjectID:       v.Object.ObjectID,
		Name:           v.Object.Name,
		Color:          v.Object.Color,
		DiameterMeters: v.Object.DiameterMeters,
		ClampedPx:      v.ClampedPx,
		ProportionalPx: v.ProportionalPx,
		ScaleLabel:     v.ScaleLabel,
	}
}

func travelPlanResponse(plan domain.LightTravelPlan, label string) dto.TravelPlanResponse {
	return dto.TravelPlanResponse{
		RealTimeSeconds:     plan.RealTimeSeconds,
		AnimationDurationMs: plan.AnimationDurationMs,
		IsTimeLapsed:        plan.IsTimeLapsed,
		SpeedMultiplier:     plan.SpeedMultiplier,
		TravelLabel:         label,
	}
}

// decodeStrict decodes a single-object JSON body, rejecting unknown
// fields and trailing content.
func decodeStrict(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	return true
}
