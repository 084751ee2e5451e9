package handler

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"shotline/internal/domain/models"
	"shotline/internal/domain/services"
	"shotline/internal/httputil"
)

// MediaHandler streams a shot's media files to the browser
type MediaHandler struct {
	shotService services.ShotService
	logger      *slog.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(shotService services.ShotService, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		shotService: shotService,
		logger:      logger,
	}
}

// mimeByExtension maps media file extensions to content types.
// Anything unknown streams as octet-stream.
var mimeByExtension = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".webm": "video/webm",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".exr":  "application/octet-stream",
	".dpx":  "application/octet-stream",
}

func mediaContentType(path string) string {
	if ct, ok := mimeByExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// mediaPath picks the stored path for the requested media type
func mediaPath(shot *models.Shot, kind string) string {
	switch kind {
	case "plate":
		return shot.PlatePath
	case "mov":
		return shot.MovPath
	case "exr":
		return shot.ExrPath
	default:
		return ""
	}
}

// serveMedia streams one file with range support so players can scrub
func (h *MediaHandler) serveMedia(w http.ResponseWriter, r *http.Request, path string) {
	f, err := os.Open(path)
	if err != nil {
		httputil.RespondError(w, http.StatusNotFound, "media file not found on disk")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		httputil.RespondError(w, http.StatusNotFound, "media file not found on disk")
		return
	}

	w.Header().Set("Content-Type", mediaContentType(path))
	http.ServeContent(w, r, filepath.Base(path), info.ModTime(), f)
}

// Media streams the requested media file for a shot
// GET /api/shots/{id}/media?type=plate|mov|exr
func (h *MediaHandler) Media(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	kind := r.URL.Query().Get("type")
	if kind == "" {
		kind = "plate"
	}

	shot, err := h.shotService.GetShot(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	path := mediaPath(shot, kind)
	if path == "" {
		httputil.RespondError(w, http.StatusNotFound, "no "+kind+" path set for shot")
		return
	}

	h.serveMedia(w, r, path)
}

// Thumb streams whatever representative media the shot has, trying
// plate, then mov, then exr
// GET /api/shots/{id}/thumb
func (h *MediaHandler) Thumb(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	shot, err := h.shotService.GetShot(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	for _, path := range []string{shot.PlatePath, shot.MovPath, shot.ExrPath} {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			h.serveMedia(w, r, path)
			return
		}
	}

	httputil.RespondError(w, http.StatusNotFound, "no media available for shot")
}
