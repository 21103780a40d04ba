package domain

import (
	"regexp"
	"strings"
)

// MinPasswordLength is enforced on registration only; login accepts any
// non-empty password so older accounts keep working.
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateEmail checks the basic local@domain shape
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return NewValidationError("email is required")
	}
	if !emailPattern.MatchString(email) {
		return NewValidationError("enter a valid email")
	}
	return nil
}

// ValidateLogin checks login credentials before any network call
func ValidateLogin(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return NewValidationError("password is required")
	}
	return nil
}

// ValidateRegistration checks registration fields before any network call
func ValidateRegistration(name, email, password, confirm string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name is required")
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return NewValidationError("password is required")
	}
	if len(password) < MinPasswordLength {
		return NewValidationError("password must be at least 8 characters")
	}
	if password != confirm {
		return NewValidationError("passwords do not match")
	}
	return nil
}
