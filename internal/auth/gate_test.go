package auth

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/Veraticus/monthly-budget/internal/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	current   *Identity
	signInErr error
	signOut   error
	listener  func(*Identity)
}

func (f *fakeProvider) SignUp(ctx context.Context, email, _ string) (*Identity, error) {
	return f.signIn(email)
}

func (f *fakeProvider) SignIn(ctx context.Context, email, _ string) (*Identity, error) {
	return f.signIn(email)
}

func (f *fakeProvider) SignInFederated(context.Context) (*Identity, error) {
	return f.signIn("fed@example.com")
}

func (f *fakeProvider) signIn(email string) (*Identity, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	f.current = &Identity{UID: "u-1", Email: email, Provider: model.ProviderPassword}
	if f.listener != nil {
		f.listener(f.current)
	}
	return f.current, nil
}

func (f *fakeProvider) SignOut(context.Context) error {
	if f.signOut != nil {
		return f.signOut
	}
	f.current = nil
	if f.listener != nil {
		f.listener(nil)
	}
	return nil
}

func (f *fakeProvider) CurrentUser() *Identity {
	return f.current
}

func (f *fakeProvider) Subscribe(fn func(*Identity)) func() {
	f.listener = fn
	return func() { f.listener = nil }
}

type gateKV struct {
	values  map[string]string
	mu      sync.Mutex
	failSet bool
}

func newGateKV() *gateKV {
	return &gateKV{values: make(map[string]string)}
}

func (k *gateKV) Get(_ context.Context, key string) (string, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.values[key]
	return v, ok, nil
}

func (k *gateKV) Set(_ context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.failSet {
		return errors.New("read-only")
	}
	k.values[key] = value
	return nil
}

func (k *gateKV) Delete(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.values, key)
	return nil
}

func TestGate_StartModes(t *testing.T) {
	tests := []struct {
		name     string
		guest    string
		identity *Identity
		want     Mode
	}{
		{name: "nothing stored", want: ModeUnauthenticated},
		{name: "guest", guest: "true", want: ModeGuest},
		{name: "signed in", identity: &Identity{UID: "u"}, want: ModeAuthenticated},
		{name: "guest wins over identity", guest: "true", identity: &Identity{UID: "u"}, want: ModeGuest},
		{name: "other sentinel ignored", guest: "yes", want: ModeUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newGateKV()
			if tt.guest != "" {
				kv.values[persist.KeyGuestMode] = tt.guest
			}
			gate := NewGate(context.Background(), &fakeProvider{current: tt.identity}, kv)
			defer gate.Close()

			assert.Equal(t, tt.want, gate.Mode())
			assert.Equal(t, tt.want == ModeGuest, gate.ShowCreateAccount())
			if tt.want == ModeUnauthenticated {
				assert.ErrorIs(t, gate.Require(), common.ErrNotSignedIn)
			} else {
				assert.NoError(t, gate.Require())
			}
		})
	}
}

func TestGate_GuestLifecycle(t *testing.T) {
	ctx := context.Background()
	kv := newGateKV()
	gate := NewGate(ctx, &fakeProvider{}, kv)

	gate.ContinueAsGuest(ctx)
	assert.Equal(t, ModeGuest, gate.Mode())
	assert.Equal(t, "true", kv.values[persist.KeyGuestMode])
	assert.Nil(t, gate.Identity())

	require.NoError(t, gate.Logout(ctx))
	assert.Equal(t, ModeUnauthenticated, gate.Mode())
	assert.NotContains(t, kv.values, persist.KeyGuestMode)
}

func TestGate_GuestWithoutStorage(t *testing.T) {
	ctx := context.Background()
	kv := newGateKV()
	kv.failSet = true
	gate := NewGate(ctx, &fakeProvider{}, kv)

	gate.ContinueAsGuest(ctx)
	assert.Equal(t, ModeGuest, gate.Mode())
}

func TestGate_SignInAndLogout(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{}
	gate := NewGate(ctx, provider, newGateKV())

	identity, err := gate.SignIn(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, ModeAuthenticated, gate.Mode())
	assert.Equal(t, identity.UID, gate.Identity().UID)

	require.NoError(t, gate.Logout(ctx))
	assert.Equal(t, ModeUnauthenticated, gate.Mode())
}

func TestGate_SignInFromGuestLeavesGuestMode(t *testing.T) {
	ctx := context.Background()
	kv := newGateKV()
	gate := NewGate(ctx, &fakeProvider{}, kv)
	gate.ContinueAsGuest(ctx)

	_, err := gate.SignUp(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, ModeAuthenticated, gate.Mode())
	assert.NotContains(t, kv.values, persist.KeyGuestMode)
}

func TestGate_FailuresKeepMode(t *testing.T) {
	ctx := context.Background()

	provider := &fakeProvider{signInErr: ErrWrongPassword}
	gate := NewGate(ctx, provider, newGateKV())
	_, err := gate.SignIn(ctx, "ada@example.com", "nope")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Equal(t, ModeUnauthenticated, gate.Mode())

	_, err = gate.SignInFederated(ctx)
	assert.ErrorIs(t, err, ErrWrongPassword)

	signedIn := &fakeProvider{current: &Identity{UID: "u"}, signOut: ErrAuthFailed}
	gate = NewGate(ctx, signedIn, newGateKV())
	assert.ErrorIs(t, gate.Logout(ctx), ErrAuthFailed)
	assert.Equal(t, ModeAuthenticated, gate.Mode())
}
