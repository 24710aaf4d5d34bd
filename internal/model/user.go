package model

import "time"

// AuthProvider names how an account signs in.
type AuthProvider string

const (
	// ProviderPassword accounts sign in with email and password.
	ProviderPassword AuthProvider = "password"
	// ProviderGoogle accounts sign in through Google.
	ProviderGoogle AuthProvider = "google"
)

// User is a locally registered account.
type User struct {
	CreatedAt    time.Time
	ID           string
	Email        string
	PasswordHash string
	Provider     AuthProvider
}

// HasPassword reports whether the account can sign in with a password.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}
