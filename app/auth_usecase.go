package app

import (
	"context"

	"github.com/finsight-app/finsight/domain"
)

// AuthUseCase orchestrates login, registration, and session inspection
type AuthUseCase struct {
	auth domain.AuthService
}

// NewAuthUseCase creates a new auth use case
func NewAuthUseCase(auth domain.AuthService) *AuthUseCase {
	return &AuthUseCase{auth: auth}
}

// Login signs the user in and persists the session
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return uc.auth.Login(ctx, email, password)
}

// Register creates an account and persists the returned session
func (uc *AuthUseCase) Register(ctx context.Context, name, email, password, confirm string) (*domain.Session, error) {
	return uc.auth.Register(ctx, name, email, password, confirm)
}

// Logout discards the persisted session
func (uc *AuthUseCase) Logout() error {
	return uc.auth.Logout()
}

// Whoami reports the current user. With verify set the stored token is
// checked against the server; otherwise the cached user is returned
// without any network traffic.
func (uc *AuthUseCase) Whoami(ctx context.Context, verify bool) (*domain.User, error) {
	if verify {
		return uc.auth.Me(ctx)
	}
	user, err := uc.auth.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewAuthError("not logged in", nil)
	}
	return user, nil
}
