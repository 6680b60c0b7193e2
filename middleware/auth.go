package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/visitlog/userctx"
)

// Session keys shared with the auth controller
const (
	SessionUserID        = "user_id"
	SessionUserName      = "user_name"
	SessionRedirectAfter = "redirect_after_login"
)

// RequireAuth ensures the user is signed in.
// Otherwise it remembers the requested path and redirects to /login.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		userID, _ := sess.Get(SessionUserID).(string)
		if userID == "" {
			sess.Set(SessionRedirectAfter, r.URL.RequestURI())
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := userctx.SetUserID(r.Context(), userID)
		if name, ok := sess.Get(SessionUserName).(string); ok {
			ctx = userctx.SetUserName(ctx, name)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
