package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strings"

	"gitea.com/go-chi/session"

	"github.com/blogem/visitlog/authenticator"
	"github.com/blogem/visitlog/logger"
	"github.com/blogem/visitlog/middleware"
)

const sessionState = "state"

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login initiates the authentication process
func (ac *AuthController) Login(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := generateRandomState()
		if err != nil {
			http.Error(w, "Failed to start login", http.StatusInternalServerError)
			return
		}

		// Validated again in the callback
		sess := session.GetSession(r)
		sess.Set(sessionState, state)

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback handles the redirect back from the identity provider
func (ac *AuthController) Callback(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		storedState, _ := sess.Get(sessionState).(string)
		if storedState == "" {
			http.Error(w, "State not found in session", http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("state") != storedState {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			logger.Get().Warnw("code exchange failed", "error", err)
			http.Error(w, "Failed to exchange authorization code", http.StatusUnauthorized)
			return
		}

		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			logger.Get().Warnw("ID token verification failed", "error", err)
			http.Error(w, "Failed to verify ID token", http.StatusUnauthorized)
			return
		}

		if claims.Subject() == "" {
			http.Error(w, "ID token has no subject", http.StatusUnauthorized)
			return
		}

		sess.Set(middleware.SessionUserID, claims.Subject())
		sess.Set(middleware.SessionUserName, claims.DisplayName())
		sess.Delete(sessionState)

		target := "/admin/visits"
		if redirect, ok := sess.Get(middleware.SessionRedirectAfter).(string); ok && isLocalPath(redirect) {
			target = redirect
			sess.Delete(middleware.SessionRedirectAfter)
		}

		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// Logout clears the signed-in user from the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete(middleware.SessionUserID)
	sess.Delete(middleware.SessionUserName)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// isLocalPath rejects absolute and protocol-relative redirect targets
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
