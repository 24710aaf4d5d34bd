// Package auth implements the identity collaborator: local email/password
// accounts, Google sign-in, persisted sessions, and the gate that decides
// whether the budget is reachable.
package auth

import (
	"errors"

	"github.com/Veraticus/monthly-budget/internal/i18n"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6

// Identity provider failures. Every error a Provider returns matches one of
// these with errors.Is.
var (
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrWeakPassword      = errors.New("password too weak")
	ErrSignInCancelled   = errors.New("sign-in cancelled")
	ErrAuthFailed        = errors.New("authentication failed")
)

// Code maps err onto the closed set of provider error codes. Anything
// unrecognised is a generic authentication failure.
func Code(err error) i18n.ErrorCode {
	switch {
	case errors.Is(err, ErrEmailAlreadyInUse):
		return i18n.CodeEmailInUse
	case errors.Is(err, ErrInvalidEmail):
		return i18n.CodeInvalidEmail
	case errors.Is(err, ErrUserNotFound):
		return i18n.CodeUserNotFound
	case errors.Is(err, ErrWrongPassword):
		return i18n.CodeWrongPassword
	case errors.Is(err, ErrWeakPassword):
		return i18n.CodeWeakPassword
	case errors.Is(err, ErrSignInCancelled):
		return i18n.CodeCancelled
	default:
		return i18n.CodeAuthentication
	}
}

// Message returns the localized text shown for err.
func Message(lang i18n.Language, err error) string {
	return i18n.ErrorMessage(lang, Code(err))
}
