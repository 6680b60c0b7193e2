package authenticator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscoveryServer(t *testing.T) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"issuer":                 srv.URL,
			"authorization_endpoint": srv.URL + "/authorize",
			"token_endpoint":         srv.URL + "/oauth/token",
			"jwks_uri":               srv.URL + "/.well-known/jwks.json",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestNewOIDCProviderValidation(t *testing.T) {
	valid := Config{Domain: "example.eu.auth0.com", ClientID: "id", ClientSecret: "secret", CallbackURL: "http://localhost:8080/callback"}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing domain", func(c *Config) { c.Domain = "" }, "domain is required"},
		{"missing client id", func(c *Config) { c.ClientID = "" }, "client ID is required"},
		{"missing secret", func(c *Config) { c.ClientSecret = "" }, "client secret is required"},
		{"missing callback", func(c *Config) { c.CallbackURL = "" }, "callback URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			_, err := NewOIDCProvider(context.Background(), cfg)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestNewOIDCProviderDiscovery(t *testing.T) {
	srv := newDiscoveryServer(t)

	p, err := NewOIDCProvider(context.Background(), Config{
		Domain:       srv.URL,
		ClientID:     "visitlog",
		ClientSecret: "secret",
		CallbackURL:  "http://localhost:8080/callback",
	})
	require.NoError(t, err)

	u, err := url.Parse(p.GetAuthURL("state-123"))
	require.NoError(t, err)
	assert.Equal(t, "/authorize", u.Path)
	assert.Equal(t, "state-123", u.Query().Get("state"))
	assert.Equal(t, "visitlog", u.Query().Get("client_id"))
	assert.Contains(t, u.Query().Get("scope"), "openid")

	_, err = p.GetClaims(context.Background(), &Token{})
	assert.EqualError(t, err, "no id_token in token")
}

func TestIssuerURL(t *testing.T) {
	assert.Equal(t, "https://tenant.auth0.com/", issuerURL("tenant.auth0.com"))
	assert.Equal(t, "http://127.0.0.1:9000", issuerURL("http://127.0.0.1:9000"))
}

func TestClaimsDisplayName(t *testing.T) {
	assert.Equal(t, "nick", Claims{"nickname": "nick", "name": "Nick Name", "sub": "auth0|1"}.DisplayName())
	assert.Equal(t, "a@example.com", Claims{"nickname": "", "email": "a@example.com", "sub": "auth0|1"}.DisplayName())
	assert.Equal(t, "auth0|1", Claims{"sub": "auth0|1"}.DisplayName())
	assert.Empty(t, Claims{}.DisplayName())
	assert.Equal(t, "auth0|1", Claims{"sub": "auth0|1"}.Subject())
}
