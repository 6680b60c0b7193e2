package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/visitlog/authenticator"
	"github.com/blogem/visitlog/middleware"
	"github.com/blogem/visitlog/userctx"
)

type fakeProvider struct {
	exchangeErr error
	claims      authenticator.Claims
}

func (p *fakeProvider) GetAuthURL(state string) string {
	return "https://idp.example.com/authorize?state=" + url.QueryEscape(state)
}

func (p *fakeProvider) ExchangeCode(ctx context.Context, code string) (*authenticator.Token, error) {
	if p.exchangeErr != nil {
		return nil, p.exchangeErr
	}
	return &authenticator.Token{IDToken: "id-" + code}, nil
}

func (p *fakeProvider) GetClaims(ctx context.Context, token *authenticator.Token) (authenticator.Claims, error) {
	return p.claims, nil
}

func newAuthRouter(t *testing.T, p authenticator.Provider) *chi.Mux {
	t.Helper()

	sessioner, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "visitlog_test",
		Gclifetime:  3600,
		Maxlifetime: 3600,
	})
	require.NoError(t, err)

	ac := NewAuthController()

	r := chi.NewRouter()
	r.Use(sessioner)
	r.Get("/login", ac.Login(p))
	r.Get("/callback", ac.Callback(p))
	r.Get("/logout", ac.Logout)
	r.With(middleware.RequireAuth).Get("/admin/visits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(userctx.GetUserName(r.Context())))
	})
	return r
}

// client replays the session cookie between requests
type client struct {
	t       *testing.T
	h       http.Handler
	cookies []*http.Cookie
}

func (c *client) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)

	if cks := rec.Result().Cookies(); len(cks) > 0 {
		c.cookies = cks
	}
	return rec
}

func (c *client) login() string {
	rec := c.get("/login")
	require.Equal(c.t, http.StatusTemporaryRedirect, rec.Code)

	u, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(c.t, err)

	state := u.Query().Get("state")
	require.NotEmpty(c.t, state)
	return state
}

func TestLoginCallbackFlow(t *testing.T) {
	p := &fakeProvider{claims: authenticator.Claims{"sub": "auth0|42", "nickname": "editor"}}
	c := &client{t: t, h: newAuthRouter(t, p)}

	// Protected page remembers where to return to
	rec := c.get("/admin/visits?limit=5")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	state := c.login()

	rec = c.get("/callback?code=abc&state=" + url.QueryEscape(state))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/visits?limit=5", rec.Header().Get("Location"))

	rec = c.get("/admin/visits")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "editor", rec.Body.String())

	rec = c.get("/logout")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = c.get("/admin/visits")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestCallbackDefaultRedirect(t *testing.T) {
	p := &fakeProvider{claims: authenticator.Claims{"sub": "auth0|42"}}
	c := &client{t: t, h: newAuthRouter(t, p)}

	state := c.login()

	rec := c.get("/callback?code=abc&state=" + url.QueryEscape(state))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/visits", rec.Header().Get("Location"))
}

func TestCallbackRejects(t *testing.T) {
	t.Run("no state in session", func(t *testing.T) {
		c := &client{t: t, h: newAuthRouter(t, &fakeProvider{})}

		rec := c.get("/callback?code=abc&state=x")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("state mismatch", func(t *testing.T) {
		c := &client{t: t, h: newAuthRouter(t, &fakeProvider{})}
		c.login()

		rec := c.get("/callback?code=abc&state=forged")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("exchange failure", func(t *testing.T) {
		c := &client{t: t, h: newAuthRouter(t, &fakeProvider{exchangeErr: errors.New("invalid_grant")})}
		state := c.login()

		rec := c.get("/callback?code=abc&state=" + url.QueryEscape(state))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing subject", func(t *testing.T) {
		c := &client{t: t, h: newAuthRouter(t, &fakeProvider{claims: authenticator.Claims{"nickname": "ghost"}})}
		state := c.login()

		rec := c.get("/callback?code=abc&state=" + url.QueryEscape(state))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestIsLocalPath(t *testing.T) {
	assert.True(t, isLocalPath("/admin/visits"))
	assert.False(t, isLocalPath("//evil.example.com"))
	assert.False(t, isLocalPath("https://evil.example.com"))
	assert.False(t, isLocalPath(""))
}
