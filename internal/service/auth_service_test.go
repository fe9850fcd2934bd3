package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edu_tracker_backend/internal/config"
	"edu_tracker_backend/internal/model"
	"edu_tracker_backend/internal/repository"
	"edu_tracker_backend/internal/testutil"
	"edu_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, cfg *config.Config) *AuthService {
	t.Helper()
	db := testutil.NewDB(t)
	return NewAuthService(repository.NewUserRepository(db), nil, cfg)
}

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-test-secret-test-secret",
			ExpireTime: time.Hour,
		},
		OAuth: config.OAuthConfig{
			GoogleClientID:     "client",
			GoogleClientSecret: "secret",
			UseDevAuth:         true,
		},
	}
}

func fakeGoogle(t *testing.T, info map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
		json.NewEncoder(w).Encode(map[string]string{"access_token": "at-123"})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(info)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleCallbackSignsInGoogleUser(t *testing.T) {
	cfg := authTestConfig()
	s := newAuthService(t, cfg)

	srv := fakeGoogle(t, map[string]string{
		"id":      "42",
		"email":   "joao@example.com",
		"name":    "João",
		"picture": "https://example.com/p.png",
	})
	s.TokenEndpoint = srv.URL + "/token"
	s.UserinfoEndpoint = srv.URL + "/userinfo"

	token, user, err := s.HandleCallback(context.Background(), "code-abc", "http://localhost/cb")
	require.NoError(t, err)

	assert.Equal(t, "google_42", user.OpenID)
	assert.Equal(t, "google", user.LoginMethod)
	assert.Equal(t, model.RoleUser, user.Role)

	claims, err := util.ParseJWT(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "google_42", claims.OpenID)
	assert.NotEmpty(t, claims.ID)
}

func TestHandleCallbackPromotesOwner(t *testing.T) {
	cfg := authTestConfig()
	cfg.OAuth.OwnerOpenID = "google_42"
	s := newAuthService(t, cfg)

	srv := fakeGoogle(t, map[string]string{"id": "42", "email": "o@example.com", "name": "Owner"})
	s.TokenEndpoint = srv.URL + "/token"
	s.UserinfoEndpoint = srv.URL + "/userinfo"

	_, user, err := s.HandleCallback(context.Background(), "code", "http://localhost/cb")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)

	// Promotion sticks on the next sign-in.
	_, user, err = s.HandleCallback(context.Background(), "code", "http://localhost/cb")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestDevLoginUsesFixedIdentity(t *testing.T) {
	cfg := authTestConfig()
	s := newAuthService(t, cfg)

	token, user, err := s.DevLogin()
	require.NoError(t, err)

	assert.Equal(t, "dev_user_123", user.OpenID)
	assert.Equal(t, "dev", user.LoginMethod)
	assert.NotEmpty(t, token)

	// Repeat logins reuse the same row.
	_, again, err := s.DevLogin()
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestAuthorizeURLCarriesClientAndRedirect(t *testing.T) {
	s := newAuthService(t, authTestConfig())

	u := s.AuthorizeURL("http://localhost/cb")
	assert.Contains(t, u, "client_id=client")
	assert.Contains(t, u, "redirect_uri=http%3A%2F%2Flocalhost%2Fcb")
	assert.Contains(t, u, "scope=openid+profile+email")
}
