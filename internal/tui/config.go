package tui

import (
	"context"

	"github.com/Veraticus/monthly-budget/internal/auth"
	"github.com/Veraticus/monthly-budget/internal/budget"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/persist"
	"github.com/Veraticus/monthly-budget/internal/tui/themes"
)

// Session is the mode gate as seen by the TUI.
type Session interface {
	Authenticator
	Mode() auth.Mode
	Identity() *auth.Identity
	ShowCreateAccount() bool
	ContinueAsGuest(ctx context.Context)
	ExitGuestMode(ctx context.Context)
	Logout(ctx context.Context) error
}

// Config holds TUI configuration.
type Config struct {
	Theme         themes.Theme
	Store         *budget.Store
	Session       Session
	KV            persist.KeyValue
	FederatedURLs <-chan string
	Language      i18n.Language
	Width         int
	Height        int
	Google        bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Language: i18n.DefaultLanguage,
		Width:    100,
		Height:   30,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithStore sets the budget store edits are dispatched to.
func WithStore(store *budget.Store) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithSession sets the mode gate.
func WithSession(s Session) Option {
	return func(c *Config) {
		c.Session = s
	}
}

// WithKeyValue sets the storage the language preference is saved to.
func WithKeyValue(kv persist.KeyValue) Option {
	return func(c *Config) {
		c.KV = kv
	}
}

// WithLanguage sets the initial language.
func WithLanguage(lang i18n.Language) Option {
	return func(c *Config) {
		c.Language = lang
	}
}

// WithGoogle enables federated sign-in. urls receives consent URLs to show
// while the flow waits for the browser.
func WithGoogle(urls <-chan string) Option {
	return func(c *Config) {
		c.Google = true
		c.FederatedURLs = urls
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
