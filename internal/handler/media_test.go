package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"shotline/internal/domain/models"
	"shotline/internal/domain/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubShotService serves one fixed shot; only GetShot is callable.
type stubShotService struct {
	services.ShotService
	shot *models.Shot
}

func (s *stubShotService) GetShot(_ context.Context, _ string) (*models.Shot, error) {
	return s.shot, nil
}

func TestMediaDefaultsToPlate(t *testing.T) {
	dir := t.TempDir()
	plate := filepath.Join(dir, "SH010.dpx")
	if err := os.WriteFile(plate, []byte("plate frames"), 0644); err != nil {
		t.Fatal(err)
	}
	mov := filepath.Join(dir, "SH010.mov")
	if err := os.WriteFile(mov, []byte("mov render"), 0644); err != nil {
		t.Fatal(err)
	}

	h := NewMediaHandler(&stubShotService{shot: &models.Shot{
		ID: "s1", PlatePath: plate, MovPath: mov,
	}}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/shots/s1/media", nil)
	req.SetPathValue("id", "s1")
	rec := httptest.NewRecorder()
	h.Media(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Result().Body)
	if string(body) != "plate frames" {
		t.Errorf("body = %q, want the plate file", body)
	}
}

func TestMediaContentType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/plates/SH010.mov", "video/quicktime"},
		{"/plates/SH010.MP4", "video/mp4"},
		{"/frames/f0001.exr", "application/octet-stream"},
		{"/thumbs/SH010.jpg", "image/jpeg"},
		{"/thumbs/SH010.png", "image/png"},
		{"/odd/file.xyz", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := mediaContentType(tt.path); got != tt.want {
			t.Errorf("mediaContentType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMediaPath(t *testing.T) {
	shot := &models.Shot{
		PlatePath: "/p/plate.dpx",
		MovPath:   "/p/shot.mov",
		ExrPath:   "/p/exr",
	}

	tests := []struct {
		kind string
		want string
	}{
		{"plate", "/p/plate.dpx"},
		{"mov", "/p/shot.mov"},
		{"exr", "/p/exr"},
		{"bogus", ""},
	}
	for _, tt := range tests {
		if got := mediaPath(shot, tt.kind); got != tt.want {
			t.Errorf("mediaPath(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
