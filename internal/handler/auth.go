package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"shotline/internal/auth"
	"shotline/internal/domain/services"
	"shotline/internal/httputil"
	"shotline/internal/middleware"
)

// tokenTTL bounds bearer tokens handed to pipeline scripts.
const tokenTTL = 12 * time.Hour

// AuthHandler handles login, logout and session introspection
type AuthHandler struct {
	userService services.UserService
	store       *sessions.CookieStore
	tokenSecret string
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService services.UserService, store *sessions.CookieStore, tokenSecret string, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		store:       store,
		tokenSecret: tokenSecret,
		logger:      logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks credentials and opens a session
// POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, err)
		return
	}

	session, _ := h.store.Get(r, middleware.SessionName)
	session.Values["user_id"] = user.ID
	if err := session.Save(r, w); err != nil {
		h.logger.Error("failed to save session", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("user logged in", "username", user.Username, "role", user.Role)

	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"username": user.Username,
		"role":     user.Role,
	})
}

// Logout closes the session
// POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, middleware.SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		h.logger.Error("failed to clear session", "error", err)
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Session reports whether the request is authenticated and as whom
// GET /api/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user := httputil.GetUser(r)
	if user == nil {
		httputil.RespondJSON(w, http.StatusOK, map[string]any{"logged_in": false})
		return
	}
	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"logged_in":    true,
		"username":     user.Username,
		"role":         user.Role,
		"display_name": user.DisplayName,
	})
}

// Token issues a short-lived bearer token for scripted clients
// POST /api/token
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	user := httputil.GetUser(r)
	if user == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	token, err := auth.SignToken(h.tokenSecret, user.ID, user.Username, user.Role, tokenTTL)
	if err != nil {
		h.logger.Error("failed to sign token", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_in": int(tokenTTL.Seconds()),
	})
}
