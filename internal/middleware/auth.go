package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"shotline/internal/auth"
	"shotline/internal/domain/models"
	"shotline/internal/domain/repositories"
	"shotline/internal/httputil"
)

// SessionName is the cookie under which the login session lives.
const SessionName = "shotline_session"

// Authenticator resolves the requesting user from either the session
// cookie (browser clients) or a Bearer token (pipeline scripts) and
// places it in the request context. Requests that carry neither pass
// through anonymous; the role gates reject them where it matters.
type Authenticator struct {
	store       *sessions.CookieStore
	userRepo    repositories.UserRepository
	tokenSecret string
}

// NewAuthenticator creates the authentication middleware
func NewAuthenticator(store *sessions.CookieStore, userRepo repositories.UserRepository, tokenSecret string) *Authenticator {
	return &Authenticator{
		store:       store,
		userRepo:    userRepo,
		tokenSecret: tokenSecret,
	}
}

// Middleware wraps a handler with user resolution
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := a.resolve(r); user != nil {
			r = httputil.WithUser(r, user)
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Authenticator) resolve(r *http.Request) *models.User {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return a.resolveToken(r, strings.TrimPrefix(header, "Bearer "))
	}

	session, err := a.store.Get(r, SessionName)
	if err != nil {
		return nil
	}
	userID, _ := session.Values["user_id"].(string)
	if userID == "" {
		return nil
	}

	user, err := a.userRepo.GetByID(r.Context(), userID)
	if err != nil {
		return nil
	}
	return user
}

func (a *Authenticator) resolveToken(r *http.Request, raw string) *models.User {
	claims, err := auth.ParseToken(a.tokenSecret, raw)
	if err != nil {
		return nil
	}
	// The token names the user; the database is still the authority on
	// its current role.
	user, err := a.userRepo.GetByID(r.Context(), claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
