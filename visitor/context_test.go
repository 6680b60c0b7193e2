package visitor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContextClientAddress(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr without port", "192.0.2.10:5555", nil, "192.0.2.10"},
		{"ipv6 remote addr", "[2001:db8::1]:443", nil, "2001:db8::1"},
		{"forwarded for first hop", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.2"}, "198.51.100.7"},
		{"real ip", "10.0.0.1:80", map[string]string{"X-Real-IP": "198.51.100.8"}, "198.51.100.8"},
		{"forwarded wins over real ip", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.7", "X-Real-IP": "198.51.100.8"}, "198.51.100.7"},
		{"remote addr without port separator", "unix-socket", nil, "unix-socket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/blog/1", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, FromRequest(r).ClientAddress())
		})
	}
}

func TestRequestContextFallsBackToLocalAddress(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/blog/1", nil)
	r.RemoteAddr = ""

	assert.Equal(t, localHostAddress(), FromRequest(r).ClientAddress())
	assert.NotEmpty(t, FromRequest(r).ClientAddress())
}

func TestRequestContextPath(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/blog/42/view?ref=home", nil)

	assert.Equal(t, "/blog/42/view", FromRequest(r).RequestPath())
	assert.Empty(t, FromRequest(nil).RequestPath())
}

func TestRequestContextSessionIDWithoutSessioner(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.NotPanics(t, func() {
		assert.Empty(t, FromRequest(r).SessionID())
	})
	assert.Empty(t, FromRequest(nil).SessionID())
}

func TestRequestContextSessionIDFromSessioner(t *testing.T) {
	sessioner, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "visitlog_test",
		Gclifetime:  3600,
		Maxlifetime: 3600,
	})
	require.NoError(t, err)

	var got string
	router := chi.NewRouter()
	router.Use(sessioner)
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		got = FromRequest(r).SessionID()
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, got)
}
