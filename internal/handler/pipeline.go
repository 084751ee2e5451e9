package handler

import (
	"log/slog"
	"net/http"

	"shotline/internal/domain/services"
	"shotline/internal/httputil"
)

// PipelineHandler exposes the filesystem pipeline operations
type PipelineHandler struct {
	pipelineService services.PipelineService
	logger          *slog.Logger
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(pipelineService services.PipelineService, logger *slog.Logger) *PipelineHandler {
	return &PipelineHandler{
		pipelineService: pipelineService,
		logger:          logger,
	}
}

// NukePath returns the shot's comp script path
// GET /api/shots/{id}/nuke_path
func (h *PipelineHandler) NukePath(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	path, err := h.pipelineService.NukePath(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"path": path})
}

// GenerateComp creates the next versioned comp script for the shot
// POST /api/shots/{id}/generate_comp
func (h *PipelineHandler) GenerateComp(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	path, err := h.pipelineService.GenerateComp(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"created": true,
		"path":    path,
	})
}

// GenerateStructure creates the standard folder set for the shot
// POST /api/shots/{id}/generate_structure
func (h *PipelineHandler) GenerateStructure(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.pipelineService.GenerateStructure(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// SendToClient copies the shot's deliverables into a dated delivery
// batch
// POST /api/shots/{id}/send_to_client
func (h *PipelineHandler) SendToClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.pipelineService.SendToClient(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}
