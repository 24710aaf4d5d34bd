package tui

import (
	"context"

	"github.com/Veraticus/monthly-budget/internal/auth"
	tea "github.com/charmbracelet/bubbletea"
)

// Authenticator is the part of the gate the TUI drives asynchronously.
type Authenticator interface {
	SignUp(ctx context.Context, email, password string) (*auth.Identity, error)
	SignIn(ctx context.Context, email, password string) (*auth.Identity, error)
	SignInFederated(ctx context.Context) (*auth.Identity, error)
}

func signInCmd(ctx context.Context, a Authenticator, email, password string, signUp bool) tea.Cmd {
	return func() tea.Msg {
		var (
			identity *auth.Identity
			err      error
		)
		if signUp {
			identity, err = a.SignUp(ctx, email, password)
		} else {
			identity, err = a.SignIn(ctx, email, password)
		}
		return authResultMsg{identity: identity, err: err}
	}
}

func federatedCmd(ctx context.Context, a Authenticator) tea.Cmd {
	return func() tea.Msg {
		identity, err := a.SignInFederated(ctx)
		return authResultMsg{identity: identity, err: err}
	}
}

// waitForURL blocks until the federator publishes a consent URL.
func waitForURL(urls <-chan string) tea.Cmd {
	if urls == nil {
		return nil
	}
	return func() tea.Msg {
		url, ok := <-urls
		if !ok {
			return nil
		}
		return federatedURLMsg{url: url}
	}
}
