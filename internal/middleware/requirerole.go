package middleware

import (
	"net/http"

	"shotline/internal/domain/models"
	"shotline/internal/httputil"
)

// RequireAuth rejects anonymous requests with a 401
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httputil.GetUser(r) == nil {
			httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireProjectManager gates project create/edit/delete to admins and
// producers
func RequireProjectManager(next http.Handler) http.Handler {
	return requireCheck(next, (*models.User).CanManageProjects, "project management requires admin or producer role")
}

// RequireShotManager gates shot mutation, import and pipeline actions
// to admins, producers and supervisors
func RequireShotManager(next http.Handler) http.Handler {
	return requireCheck(next, (*models.User).CanManageShots, "shot management requires admin, producer or supervisor role")
}

// RequireAdmin gates user administration to admins
func RequireAdmin(next http.Handler) http.Handler {
	return requireCheck(next, func(u *models.User) bool { return u.Role == models.RoleAdmin }, "admin role required")
}

func requireCheck(next http.Handler, allowed func(*models.User) bool, detail string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := httputil.GetUser(r)
		if user == nil {
			httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !allowed(user) {
			httputil.RespondError(w, http.StatusForbidden, detail)
			return
		}
		next.ServeHTTP(w, r)
	})
}
