package auth

import (
	"context"
	"sync"

	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/Veraticus/monthly-budget/internal/persist"
)

// Mode is what the gate currently allows.
type Mode string

const (
	ModeUnauthenticated Mode = "unauthenticated"
	ModeGuest           Mode = "guest"
	ModeAuthenticated   Mode = "authenticated"
)

const guestSentinel = "true"

// Gate decides whether the budget is reachable. Guest mode is a local flag
// and wins over a signed-in identity while it is set.
type Gate struct {
	provider    Provider
	kv          persist.KeyValue
	identity    *Identity
	unsubscribe func()
	mu          sync.RWMutex
	guest       bool
}

// NewGate reads the stored guest flag and follows provider's current user.
func NewGate(ctx context.Context, provider Provider, kv persist.KeyValue) *Gate {
	g := &Gate{
		provider: provider,
		kv:       kv,
	}

	raw, ok, err := kv.Get(ctx, persist.KeyGuestMode)
	if err != nil {
		common.LogWarn(err, "Failed to read guest mode", nil)
	}
	g.guest = ok && raw == guestSentinel
	g.identity = provider.CurrentUser()
	g.unsubscribe = provider.Subscribe(func(identity *Identity) {
		g.mu.Lock()
		g.identity = identity
		g.mu.Unlock()
	})

	return g
}

// Close stops following the provider.
func (g *Gate) Close() {
	g.unsubscribe()
}

// Mode returns the current mode.
func (g *Gate) Mode() Mode {
	g.mu.RLock()
	defer g.mu.RUnlock()
	switch {
	case g.guest:
		return ModeGuest
	case g.identity != nil:
		return ModeAuthenticated
	default:
		return ModeUnauthenticated
	}
}

// Identity returns the signed-in user, or nil outside authenticated mode.
func (g *Gate) Identity() *Identity {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.guest || g.identity == nil {
		return nil
	}
	identity := *g.identity
	return &identity
}

// Require returns common.ErrNotSignedIn unless the budget is reachable.
func (g *Gate) Require() error {
	if g.Mode() == ModeUnauthenticated {
		return common.ErrNotSignedIn
	}
	return nil
}

// ShowCreateAccount reports whether the "create account" affordance is
// offered, which only happens in guest mode.
func (g *Gate) ShowCreateAccount() bool {
	return g.Mode() == ModeGuest
}

// ContinueAsGuest enters guest mode. A failed write keeps guest mode for
// this run only.
func (g *Gate) ContinueAsGuest(ctx context.Context) {
	if err := g.kv.Set(ctx, persist.KeyGuestMode, guestSentinel); err != nil {
		common.LogWarn(err, "Failed to save guest mode", nil)
	}
	g.setGuest(true)
}

// ExitGuestMode leaves guest mode. The budget data stays on the device.
func (g *Gate) ExitGuestMode(ctx context.Context) {
	if err := g.kv.Delete(ctx, persist.KeyGuestMode); err != nil {
		common.LogWarn(err, "Failed to clear guest mode", nil)
	}
	g.setGuest(false)
}

// Logout leaves guest mode when in it, and signs out otherwise.
// On failure the mode is unchanged.
func (g *Gate) Logout(ctx context.Context) error {
	switch g.Mode() {
	case ModeGuest:
		g.ExitGuestMode(ctx)
		return nil
	case ModeAuthenticated:
		return g.provider.SignOut(ctx)
	default:
		return nil
	}
}

// SignUp creates an account through the provider.
func (g *Gate) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	return g.signedIn(ctx)(g.provider.SignUp(ctx, email, password))
}

// SignIn signs a password account in through the provider.
func (g *Gate) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	return g.signedIn(ctx)(g.provider.SignIn(ctx, email, password))
}

// SignInFederated runs the provider's federated flow.
func (g *Gate) SignInFederated(ctx context.Context) (*Identity, error) {
	return g.signedIn(ctx)(g.provider.SignInFederated(ctx))
}

// signedIn leaves guest mode after a successful sign-in so the new identity
// takes effect.
func (g *Gate) signedIn(ctx context.Context) func(*Identity, error) (*Identity, error) {
	return func(identity *Identity, err error) (*Identity, error) {
		if err != nil {
			return nil, err
		}
		if g.Mode() == ModeGuest {
			g.ExitGuestMode(ctx)
		}
		return identity, nil
	}
}

func (g *Gate) setGuest(guest bool) {
	g.mu.Lock()
	g.guest = guest
	g.mu.Unlock()
}
