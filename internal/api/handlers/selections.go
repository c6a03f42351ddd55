package handlers

import (
	"log"
	"net/http"

	"github.com/renotari/powers-explorer/internal/api/dto"
	"github.com/renotari/powers-explorer/internal/ports"
	"github.com/renotari/powers-explorer/internal/services"
)

// SelectionHandler exposes the pick-two-objects workflow. Object ids
// are validated against the catalog before entering a selection.
type SelectionHandler struct {
	Sessions *services.SessionManager
	Repo     ports.ObjectRepository
}

func (h *SelectionHandler) Select(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SelectRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	if req.SessionID == "" {
		writeError(w, r, http.StatusBadRequest, "session_id is required")
		return
	}
	if req.ObjectID == "" {
		writeError(w, r, http.StatusBadRequest, "object_id is required")
		return
	}

	_, ok, err := h.Repo.GetObject(r.Context(), req.ObjectID)
	if err != nil {
		log.Printf("select object lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown object")
		return
	}

	update, err := h.Sessions.Select(req.SessionID, req.ObjectID)
	if err != nil {
		log.Printf("session select failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.SelectionResponse{
		SessionID: req.SessionID,
		Selected:  update.Current,
		Ready:     update.Ready,
	}
	if update.HasEvicted {
		res.Evicted = &update.Evicted
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *SelectionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ClearSelectionRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	if req.SessionID == "" {
		writeError(w, r, http.StatusBadRequest, "session_id is required")
		return
	}

	h.Sessions.Clear(req.SessionID)

	writeJSON(w, r, http.StatusOK, dto.SelectionResponse{
		SessionID: req.SessionID,
		Selected:  []string{},
	})
}

func (h *SelectionHandler) Current(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, r, http.StatusBadRequest, "session_id is required")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SelectionResponse{
		SessionID: sessionID,
		Selected:  h.Sessions.Current(sessionID),
		Ready:     h.Sessions.IsFull(sessionID),
	})
}
