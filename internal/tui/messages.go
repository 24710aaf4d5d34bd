package tui

import "github.com/Veraticus/monthly-budget/internal/auth"

// authResultMsg carries the outcome of a sign-in or sign-up attempt.
type authResultMsg struct {
	identity *auth.Identity
	err      error
}

// federatedURLMsg carries the consent URL of a federated sign-in in progress.
type federatedURLMsg struct {
	url string
}
