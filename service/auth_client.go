package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/finsight-app/finsight/domain"
)

// AuthClient implements domain.AuthService against the backend auth routes.
// Validation runs before any network call; on success the session is
// persisted so CurrentUser works offline.
type AuthClient struct {
	api      *APIClient
	sessions domain.SessionStore
}

// NewAuthClient creates an auth client sharing the API plumbing
func NewAuthClient(api *APIClient, sessions domain.SessionStore) *AuthClient {
	return &AuthClient{api: api, sessions: sessions}
}

// authResponse mirrors the backend's flattened auth payload
type authResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func (r authResponse) session() *domain.Session {
	return &domain.Session{
		Token: r.Token,
		User:  domain.User{UserID: r.UserID, Name: r.Name, Email: r.Email},
	}
}

// Login exchanges credentials for a session and persists it
func (c *AuthClient) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if err := domain.ValidateLogin(email, password); err != nil {
		return nil, err
	}

	body := map[string]string{
		"email":    normalizeEmail(email),
		"password": password,
	}
	var resp authResponse
	if err := c.api.do(ctx, http.MethodPost, "/api/auth/login", body, false, &resp); err != nil {
		return nil, err
	}

	session := resp.session()
	if err := c.sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Register creates an account, then persists the returned session
func (c *AuthClient) Register(ctx context.Context, name, email, password, confirm string) (*domain.Session, error) {
	if err := domain.ValidateRegistration(name, email, password, confirm); err != nil {
		return nil, err
	}

	body := map[string]string{
		"name":     strings.TrimSpace(name),
		"email":    normalizeEmail(email),
		"password": password,
	}
	var resp authResponse
	if err := c.api.do(ctx, http.MethodPost, "/api/auth/register", body, false, &resp); err != nil {
		return nil, err
	}

	session := resp.session()
	if err := c.sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Me asks the backend who the stored token belongs to
func (c *AuthClient) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.api.do(ctx, http.MethodGet, "/api/auth/me", nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the persisted session. No server call is involved; the
// token simply stops being presented.
func (c *AuthClient) Logout() error {
	return c.sessions.Clear()
}

// CurrentUser returns the cached user without touching the network.
// A nil user means unauthenticated.
func (c *AuthClient) CurrentUser() (*domain.User, error) {
	session, err := c.sessions.Load()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	user := session.User
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
