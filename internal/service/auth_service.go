package service

import (
	"context"
	"edu_tracker_backend/internal/config"
	"edu_tracker_backend/internal/model"
	"edu_tracker_backend/internal/repository"
	"edu_tracker_backend/internal/util"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	googleAuthEndpoint     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenEndpoint    = "https://oauth2.googleapis.com/token"
	googleUserinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

	revokedKeyPrefix = "auth:revoked:"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	Cfg      *config.Config

	// Endpoint overrides for tests; zero values mean the Google defaults.
	TokenEndpoint    string
	UserinfoEndpoint string

	httpClient *http.Client
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:   userRepo,
		Redis:      rdb,
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthorizeURL builds the provider consent-screen redirect for the given
// callback.
func (s *AuthService) AuthorizeURL(redirectURI string) string {
	q := url.Values{}
	q.Set("client_id", s.Cfg.OAuth.GoogleClientID)
	q.Set("redirect_uri", redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", "openid profile email")
	q.Set("access_type", "offline")
	q.Set("prompt", "consent")
	return googleAuthEndpoint + "?" + q.Encode()
}

type googleUserinfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// HandleCallback exchanges the authorization code, fetches the provider
// profile, upserts the user keyed by openId, and issues the session JWT.
func (s *AuthService) HandleCallback(ctx context.Context, code, redirectURI string) (string, *model.User, error) {
	accessToken, err := s.exchangeCode(ctx, code, redirectURI)
	if err != nil {
		return "", nil, fmt.Errorf("token exchange: %w", err)
	}

	info, err := s.fetchUserinfo(ctx, accessToken)
	if err != nil {
		return "", nil, fmt.Errorf("userinfo: %w", err)
	}

	return s.signIn(&model.User{
		OpenID:      "google_" + info.ID,
		Name:        info.Name,
		Email:       info.Email,
		Avatar:      info.Picture,
		LoginMethod: "google",
	})
}

// DevLogin signs in a fixed mock identity. Only reachable when dev auth is
// enabled in config.
func (s *AuthService) DevLogin() (string, *model.User, error) {
	return s.signIn(&model.User{
		OpenID:      "dev_user_123",
		Name:        "Desenvolvedor",
		Email:       "dev@localhost",
		LoginMethod: "dev",
	})
}

func (s *AuthService) signIn(user *model.User) (string, *model.User, error) {
	user.Role = model.RoleUser
	user.LastSignedIn = time.Now()

	if err := s.UserRepo.Upsert(user); err != nil {
		return "", nil, err
	}

	// Re-read to pick up the canonical row id after an upsert that hit the
	// conflict path.
	stored, err := s.UserRepo.FindByOpenID(user.OpenID)
	if err != nil {
		return "", nil, err
	}

	// The configured owner identity is always an admin; the upsert never
	// touches role, so manual promotions survive later sign-ins too.
	if stored.OpenID == s.Cfg.OAuth.OwnerOpenID && stored.Role != model.RoleAdmin {
		if err := s.UserRepo.UpdateProfile(stored.ID, map[string]interface{}{"role": model.RoleAdmin}); err != nil {
			return "", nil, err
		}
		stored.Role = model.RoleAdmin
	}

	token, err := util.GenerateJWT(stored, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, stored, nil
}

// Logout denylists the token's jti until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.Redis.Set(ctx, revokedKeyPrefix+claims.ID, 1, ttl).Err()
}

// IsRevoked reports whether the jti has been denylisted by a logout.
func (s *AuthService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.Redis.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *AuthService) exchangeCode(ctx context.Context, code, redirectURI string) (string, error) {
	endpoint := s.TokenEndpoint
	if endpoint == "" {
		endpoint = googleTokenEndpoint
	}

	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", s.Cfg.OAuth.GoogleClientID)
	form.Set("client_secret", s.Cfg.OAuth.GoogleClientSecret)
	form.Set("redirect_uri", redirectURI)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("provider returned no access token")
	}
	return body.AccessToken, nil
}

func (s *AuthService) fetchUserinfo(ctx context.Context, accessToken string) (*googleUserinfo, error) {
	endpoint := s.UserinfoEndpoint
	if endpoint == "" {
		endpoint = googleUserinfoEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.ID == "" {
		return nil, fmt.Errorf("provider returned no user id")
	}
	return &info, nil
}
