package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  string
	}{
		{"valid", "jane@example.com", "secret", ""},
		{"empty email", "", "secret", "email is required"},
		{"whitespace email", "   ", "secret", "email is required"},
		{"malformed email", "not-an-email", "secret", "enter a valid email"},
		{"missing domain dot", "jane@example", "secret", "enter a valid email"},
		{"empty password", "jane@example.com", "", "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.email, tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		email    string
		password string
		confirm  string
		wantErr  string
	}{
		{"valid", "Jane Smith", "jane@example.com", "longenough", "longenough", ""},
		{"empty name", "", "jane@example.com", "longenough", "longenough", "name is required"},
		{"short password", "Jane", "jane@example.com", "short", "short", "at least 8 characters"},
		{"mismatched confirmation", "Jane", "jane@example.com", "longenough", "different", "do not match"},
		{"bad email", "Jane", "jane@", "longenough", "longenough", "valid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.fullName, tt.email, tt.password, tt.confirm)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDomainErrorCodes(t *testing.T) {
	assert.True(t, IsAuthError(NewAuthError("invalid email or password", nil)))
	assert.True(t, IsNotFoundError(NewNotFoundError("analysis not found", nil)))
	assert.True(t, IsNetworkError(NewNetworkError("connection refused", nil)))
	assert.False(t, IsAuthError(NewNetworkError("connection refused", nil)))

	wrapped := NewAuthError("session expired", NewNetworkError("eof", nil))
	assert.True(t, IsAuthError(wrapped))
	assert.Contains(t, wrapped.Error(), "AUTH_ERROR")
}
