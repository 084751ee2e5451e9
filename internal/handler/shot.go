package handler

import (
	"log/slog"
	"net/http"

	"shotline/internal/domain/services"
	"shotline/internal/httputil"
)

// ShotHandler handles shot HTTP requests
type ShotHandler struct {
	shotService services.ShotService
	logger      *slog.Logger
}

// NewShotHandler creates a new shot handler
func NewShotHandler(shotService services.ShotService, logger *slog.Logger) *ShotHandler {
	return &ShotHandler{
		shotService: shotService,
		logger:      logger,
	}
}

// GetShot retrieves a shot by ID
// GET /api/shots/{id}
func (h *ShotHandler) GetShot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	shot, err := h.shotService.GetShot(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, shot)
}

// UpdateShot applies a partial update to a shot
// PUT /api/shots/{id}
func (h *ShotHandler) UpdateShot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req services.UpdateShotRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	shot, err := h.shotService.UpdateShot(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, shot)
}

// DeleteShot removes a shot and its comments
// DELETE /api/shots/{id}
func (h *ShotHandler) DeleteShot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.shotService.DeleteShot(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
