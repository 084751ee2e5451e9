package handler

import (
	"io"
	"log/slog"
	"net/http"

	"shotline/internal/domain/services"
	"shotline/internal/httputil"
)

// maxImportSize caps CSV uploads. Shot lists are small; anything
// bigger than this is not a shot list.
const maxImportSize = 20 << 20

// ImportHandler handles CSV shot import HTTP requests
type ImportHandler struct {
	importService services.ImportService
	logger        *slog.Logger
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportService, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		logger:        logger,
	}
}

// readUpload pulls the "file" part out of a multipart upload
func readUpload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "No file provided")
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return nil, false
	}
	return data, true
}

// ImportCSV imports shots from an uploaded CSV into the project
// POST /api/projects/{id}/import_csv
func (h *ImportHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	data, ok := readUpload(w, r)
	if !ok {
		return
	}

	result, err := h.importService.ImportCSV(r.Context(), projectID, data)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// PreviewCSV proposes a column mapping for an uploaded CSV without
// importing anything
// POST /api/projects/{id}/import_preview
func (h *ImportHandler) PreviewCSV(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(w, r, "id"); !ok {
		return
	}

	data, ok := readUpload(w, r)
	if !ok {
		return
	}

	preview, err := h.importService.PreviewCSV(r.Context(), data)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, preview)
}
