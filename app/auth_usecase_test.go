package app

import (
	"context"
	"testing"

	"github.com/finsight-app/finsight/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthLogin(t *testing.T) {
	auth := &mockAuthService{}
	uc := NewAuthUseCase(auth)
	session := &domain.Session{Token: "tok-1", User: domain.User{Name: "Ravi"}}

	auth.On("Login", mock.Anything, "ravi@example.com", "secret123").Return(session, nil)

	got, err := uc.Login(context.Background(), "ravi@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, session, got)
	auth.AssertExpectations(t)
}

func TestAuthRegister(t *testing.T) {
	auth := &mockAuthService{}
	uc := NewAuthUseCase(auth)
	session := &domain.Session{Token: "tok-2"}

	auth.On("Register", mock.Anything, "Ravi", "ravi@example.com", "secret123", "secret123").Return(session, nil)

	got, err := uc.Register(context.Background(), "Ravi", "ravi@example.com", "secret123", "secret123")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestAuthLogout(t *testing.T) {
	auth := &mockAuthService{}
	uc := NewAuthUseCase(auth)

	auth.On("Logout").Return(nil)
	require.NoError(t, uc.Logout())
	auth.AssertExpectations(t)
}

func TestWhoamiCached(t *testing.T) {
	auth := &mockAuthService{}
	uc := NewAuthUseCase(auth)
	user := &domain.User{UserID: "u-1", Name: "Ravi"}

	auth.On("CurrentUser").Return(user, nil)

	got, err := uc.Whoami(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, user, got)
	auth.AssertNotCalled(t, "Me", mock.Anything)
}

func TestWhoamiCachedNotLoggedIn(t *testing.T) {
	auth := &mockAuthService{}
	uc := NewAuthUseCase(auth)

	auth.On("CurrentUser").Return(nil, nil)

	_, err := uc.Whoami(context.Background(), false)
	require.Error(t, err)
	assert.True(t, domain.IsAuthError(err))
}

func TestWhoamiVerified(t *testing.T) {
	auth := &mockAuthService{}
	uc := NewAuthUseCase(auth)
	user := &domain.User{UserID: "u-1"}

	auth.On("Me", mock.Anything).Return(user, nil)

	got, err := uc.Whoami(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, user, got)
	auth.AssertNotCalled(t, "CurrentUser")
}
