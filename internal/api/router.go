package api

import (
	"net/http"

	"github.com/renotari/powers-explorer/internal/api/handlers"
	"github.com/renotari/powers-explorer/internal/domain"
	"github.com/renotari/powers-explorer/internal/ports"
	"github.com/renotari/powers-explorer/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.ObjectRepository,
	index *domain.DistanceIndex,
	planner *services.LightTravelPlanner,
	scaler services.Scaler,
	sessions *services.SessionManager,
	planCache ports.TravelPlanCache,
) http.Handler {
	mux := http.NewServeMux()

	objectHandler := &handlers.ObjectHandler{Repo: repo}
	compareHandler := &handlers.CompareHandler{
		Repo:      repo,
		Index:     index,
		Planner:   planner,
		Scaler:    scaler,
		PlanCache: planCache,
	}
	selectionHandler := &handlers.SelectionHandler{
		Sessions: sessions,
		Repo:     repo,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/objects", objectHandler.List)
	mux.HandleFunc("/compare", compareHandler.Compare)
	mux.HandleFunc("/travel", compareHandler.Travel)
	mux.HandleFunc("/selections", selectionHandler.Current)
	mux.HandleFunc("/selections/select", selectionHandler.Select)
	mux.HandleFunc("/selections/clear", selectionHandler.Clear)

	return loggingMiddleware(mux)
}
