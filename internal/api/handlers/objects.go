package handlers

import (
	"log"
	"net/http"

	"github.com/renotari/powers-explorer/internal/api/dto"
	"github.com/renotari/powers-explorer/internal/ports"
	"github.com/renotari/powers-explorer/internal/services"
)

// ObjectHandler exposes read-only catalog retrieval endpoints.
type ObjectHandler struct {
	Repo ports.ObjectRepository
}

func (h *ObjectHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	objects, err := h.Repo.ListObjects(r.Context())
	if err != nil {
		log.Printf("list objects failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListObjectsResponse{
		Objects: make([]dto.ObjectResponse, 0, len(objects)),
	}
	for _, obj := range objects {
		res.Objects = append(res.Objects, dto.ObjectResponse{
			ObjectID:       obj.ObjectID,
			Name:           obj.Name,
			DiameterMeters: obj.DiameterMeters,
			Color:          obj.Color,
			ScaleLabel:     services.FormatScale(obj.DiameterMeters),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
