package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/Veraticus/monthly-budget/internal/auth"
	"github.com/Veraticus/monthly-budget/internal/budget"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/Veraticus/monthly-budget/internal/tui/components"
	tuitesting "github.com/Veraticus/monthly-budget/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	identity *auth.Identity
	signErr  error
	mu       sync.Mutex
	mode     auth.Mode
	guests   int
}

func (s *fakeSession) signIn(email string) (*auth.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.signErr != nil {
		return nil, s.signErr
	}
	s.identity = &auth.Identity{UID: "u1", Email: email, Provider: model.ProviderPassword}
	s.mode = auth.ModeAuthenticated
	return s.identity, nil
}

func (s *fakeSession) SignUp(_ context.Context, email, _ string) (*auth.Identity, error) {
	return s.signIn(email)
}

func (s *fakeSession) SignIn(_ context.Context, email, _ string) (*auth.Identity, error) {
	return s.signIn(email)
}

func (s *fakeSession) SignInFederated(ctx context.Context) (*auth.Identity, error) {
	<-ctx.Done()
	return nil, auth.ErrSignInCancelled
}

func (s *fakeSession) Mode() auth.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *fakeSession) Identity() *auth.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

func (s *fakeSession) ShowCreateAccount() bool {
	return s.Mode() == auth.ModeGuest
}

func (s *fakeSession) ContinueAsGuest(context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guests++
	s.mode = auth.ModeGuest
}

func (s *fakeSession) ExitGuestMode(context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = auth.ModeUnauthenticated
	if s.identity != nil {
		s.mode = auth.ModeAuthenticated
	}
}

func (s *fakeSession) Logout(ctx context.Context) error {
	if s.Mode() == auth.ModeGuest {
		s.ExitGuestMode(ctx)
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.mode = auth.ModeUnauthenticated
	return nil
}

type memKV struct {
	values map[string]string
}

func (kv *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := kv.values[key]
	return v, ok, nil
}

func (kv *memKV) Set(_ context.Context, key, value string) error {
	kv.values[key] = value
	return nil
}

func (kv *memKV) Delete(_ context.Context, key string) error {
	delete(kv.values, key)
	return nil
}

func newTestModel(t *testing.T, session *fakeSession, opts ...Option) (*tuitesting.Driver, *budget.Store, *memKV) {
	t.Helper()
	store := budget.NewStore(budget.DefaultState(i18n.English))
	kv := &memKV{values: map[string]string{}}
	opts = append([]Option{
		WithStore(store),
		WithSession(session),
		WithKeyValue(kv),
		WithSize(140, 50),
	}, opts...)

	m, err := New(context.Background(), opts...)
	require.NoError(t, err)
	return tuitesting.NewDriver(m), store, kv
}

func state(d *tuitesting.Driver) State {
	return d.Model.(Model).CurrentState()
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(context.Background(), WithSession(&fakeSession{}))
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestModel_InitialScreen(t *testing.T) {
	tests := []struct {
		mode auth.Mode
		want State
	}{
		{auth.ModeUnauthenticated, StateLogin},
		{auth.ModeGuest, StateBudget},
		{auth.ModeAuthenticated, StateBudget},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			d, _, _ := newTestModel(t, &fakeSession{mode: tt.mode})
			assert.Equal(t, tt.want, state(d))
		})
	}
}

func TestModel_SignIn(t *testing.T) {
	session := &fakeSession{mode: auth.ModeUnauthenticated}
	d, _, _ := newTestModel(t, session)

	d.Type("ada@example.com").Press(tea.KeyEnter).Type("secret1").Press(tea.KeyEnter)

	assert.Equal(t, StateBudget, state(d))
	assert.Contains(t, d.View(), "Welcome, ada@example.com")
	assert.NotContains(t, d.View(), "You're using guest mode")
}

func TestModel_SignInFailure(t *testing.T) {
	session := &fakeSession{mode: auth.ModeUnauthenticated, signErr: auth.ErrWrongPassword}
	d, _, _ := newTestModel(t, session)

	d.Type("ada@example.com").Press(tea.KeyEnter).Type("nope").Press(tea.KeyEnter)

	assert.Equal(t, StateLogin, state(d))
	assert.Contains(t, d.View(), "Wrong password")
}

func TestModel_GuestFlow(t *testing.T) {
	session := &fakeSession{mode: auth.ModeUnauthenticated}
	d, _, _ := newTestModel(t, session)

	d.Press(tea.KeyCtrlX)
	assert.Equal(t, StateBudget, state(d))
	assert.Equal(t, 1, session.guests)
	assert.Contains(t, d.View(), "You're using guest mode")

	d.Press(tea.KeyCtrlS)
	assert.Equal(t, StateLogin, state(d))
	assert.Contains(t, d.View(), "Already have an account? Sign In")
}

func TestModel_Logout(t *testing.T) {
	session := &fakeSession{
		mode:     auth.ModeAuthenticated,
		identity: &auth.Identity{UID: "u1", Email: "ada@example.com"},
	}
	d, _, _ := newTestModel(t, session)

	d.Press(tea.KeyCtrlO)

	assert.Equal(t, StateLogin, state(d))
	assert.Nil(t, session.Identity())
}

func TestModel_EditingUpdatesSummary(t *testing.T) {
	d, store, _ := newTestModel(t, &fakeSession{mode: auth.ModeGuest})

	d.Type("2000")

	assert.Equal(t, "2000", store.State().NetSalary)
	assert.Contains(t, d.View(), "€2000.00")
}

func TestModel_LanguageToggle(t *testing.T) {
	d, _, kv := newTestModel(t, &fakeSession{mode: auth.ModeGuest})

	d.Press(tea.KeyCtrlT)

	assert.Equal(t, i18n.Italian, d.Model.(Model).Language())
	assert.Equal(t, "it", kv.values[i18n.StorageKey])
	assert.Contains(t, d.View(), i18n.For(i18n.Italian).FixedExpenses)
}

func TestModel_HelpToggle(t *testing.T) {
	d, _, _ := newTestModel(t, &fakeSession{mode: auth.ModeGuest})

	d.Press(tea.KeyF1)
	assert.Equal(t, StateHelp, state(d))
	assert.Contains(t, d.View(), "add line")

	d.Press(tea.KeyEsc)
	assert.Equal(t, StateBudget, state(d))
}

func TestModel_Quit(t *testing.T) {
	d, _, _ := newTestModel(t, &fakeSession{mode: auth.ModeGuest})

	d.Press(tea.KeyCtrlC)

	assert.True(t, d.Quit)
	assert.Empty(t, d.View())
}

func TestModel_FederatedCancel(t *testing.T) {
	urls := make(chan string, 1)
	m, err := New(context.Background(),
		WithStore(budget.NewStore(model.BudgetState{})),
		WithSession(&fakeSession{mode: auth.ModeUnauthenticated}),
		WithGoogle(urls),
	)
	require.NoError(t, err)

	urls <- "https://accounts.example/consent"
	next, _ := m.Update(m.Init()())
	m = next.(Model)
	assert.Contains(t, tuitesting.StripANSI(m.View()), "Continue with Google")

	next, cmd := m.Update(components.GoogleLoginMsg{})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Contains(t, tuitesting.StripANSI(m.View()), "Loading...")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	next, _ = m.Update(cmd())
	m = next.(Model)
	assert.Equal(t, StateLogin, m.CurrentState())
	assert.Contains(t, tuitesting.StripANSI(m.View()), "Login cancelled")
}
