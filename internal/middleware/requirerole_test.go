package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shotline/internal/domain/models"
	"shotline/internal/httputil"
)

func doRoleRequest(t *testing.T, mw func(http.Handler) http.Handler, user *models.User) int {
	t.Helper()

	called := false
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodPost, "/api/projects", nil)
	if user != nil {
		r = httputil.WithUser(r, user)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code == http.StatusOK && !called {
		t.Fatal("200 without reaching the handler")
	}
	if w.Code != http.StatusOK && called {
		t.Fatalf("handler ran despite %d", w.Code)
	}
	return w.Code
}

func TestRequireProjectManager(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"artist", &models.User{Role: models.RoleArtist}, http.StatusForbidden},
		{"supervisor", &models.User{Role: models.RoleSupervisor}, http.StatusForbidden},
		{"producer", &models.User{Role: models.RoleProducer}, http.StatusOK},
		{"admin", &models.User{Role: models.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doRoleRequest(t, RequireProjectManager, tt.user); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequireShotManager(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"artist", &models.User{Role: models.RoleArtist}, http.StatusForbidden},
		{"lead", &models.User{Role: models.RoleLead}, http.StatusForbidden},
		{"supervisor", &models.User{Role: models.RoleSupervisor}, http.StatusOK},
		{"producer", &models.User{Role: models.RoleProducer}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doRoleRequest(t, RequireShotManager, tt.user); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	if got := doRoleRequest(t, RequireAuth, nil); got != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", got)
	}
	if got := doRoleRequest(t, RequireAuth, &models.User{Role: models.RoleArtist}); got != http.StatusOK {
		t.Errorf("artist status = %d, want 200", got)
	}
}

func TestRequireAdmin(t *testing.T) {
	if got := doRoleRequest(t, RequireAdmin, &models.User{Role: models.RoleProducer}); got != http.StatusForbidden {
		t.Errorf("producer status = %d, want 403", got)
	}
	if got := doRoleRequest(t, RequireAdmin, &models.User{Role: models.RoleAdmin}); got != http.StatusOK {
		t.Errorf("admin status = %d, want 200", got)
	}
}
