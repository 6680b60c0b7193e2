package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/visitlog/userctx"
)

func newSessionRouter(t *testing.T, signIn bool) *chi.Mux {
	t.Helper()

	sessioner, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "visitlog_test",
		Gclifetime:  3600,
		Maxlifetime: 3600,
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(sessioner)
	if signIn {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sess := session.GetSession(r)
				sess.Set(SessionUserID, "auth0|42")
				sess.Set(SessionUserName, "editor")
				next.ServeHTTP(w, r)
			})
		})
	}

	r.With(RequireAuth).Get("/admin/visits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(userctx.GetUserID(r.Context()) + " " + userctx.GetUserName(r.Context())))
	})

	return r
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	router := newSessionRouter(t, false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/visits?limit=5", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthPassesUser(t *testing.T) {
	router := newSessionRouter(t, true)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/visits", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "auth0|42 editor", rec.Body.String())
}
