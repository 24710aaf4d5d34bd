package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/monthly-budget/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidUser  = errors.New("invalid user")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateUser validates an account before it is written.
func validateUser(user *model.User) error {
	if user == nil {
		return fmt.Errorf("%w: user", ErrNilParameter)
	}
	if user.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidUser)
	}
	if strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("%w: missing email", ErrInvalidUser)
	}
	if user.Provider == "" {
		return fmt.Errorf("%w: missing provider", ErrInvalidUser)
	}
	return nil
}
