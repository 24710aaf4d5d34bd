package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/Veraticus/monthly-budget/internal/persist"
	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider keeps accounts on this device. Passwords are bcrypt hashes
// in the users table; the signed-in user survives restarts through a signed
// session token stored under persist.KeyAuthSession.
type LocalProvider struct {
	users     UserStore
	kv        persist.KeyValue
	federator Federator
	current   *Identity
	listeners map[int]func(*Identity)
	sessions  sessionManager
	order     []int
	nextID    int
	cost      int
	mu        sync.RWMutex
}

// Option configures a LocalProvider.
type Option func(*LocalProvider)

// WithBcryptCost sets the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(p *LocalProvider) {
		p.cost = cost
	}
}

// WithSessionTTL sets how long issued sessions stay valid.
func WithSessionTTL(ttl time.Duration) Option {
	return func(p *LocalProvider) {
		if ttl > 0 {
			p.sessions.ttl = ttl
		}
	}
}

// WithFederator enables SignInFederated.
func WithFederator(f Federator) Option {
	return func(p *LocalProvider) {
		p.federator = f
	}
}

// WithClock overrides the time used to stamp sessions.
func WithClock(now func() time.Time) Option {
	return func(p *LocalProvider) {
		p.sessions.now = now
	}
}

// NewLocalProvider creates a provider and restores the stored session when
// it is still valid. An invalid or expired session is discarded.
func NewLocalProvider(ctx context.Context, users UserStore, kv persist.KeyValue, secret []byte, opts ...Option) (*LocalProvider, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: session secret", common.ErrMissingConfig)
	}

	p := &LocalProvider{
		users:     users,
		kv:        kv,
		cost:      bcrypt.DefaultCost,
		listeners: make(map[int]func(*Identity)),
		sessions: sessionManager{
			secret: secret,
			ttl:    DefaultSessionTTL,
			now:    time.Now,
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	p.restore(ctx)
	return p, nil
}

func (p *LocalProvider) restore(ctx context.Context) {
	token, ok, err := p.kv.Get(ctx, persist.KeyAuthSession)
	if err != nil {
		common.LogWarn(err, "Failed to read stored session", nil)
		return
	}
	if !ok || token == "" {
		return
	}

	claims, err := p.sessions.validate(token)
	if err == nil {
		var user *model.User
		user, err = p.users.GetUserByID(ctx, claims.Subject)
		if err == nil {
			p.current = identityFor(user, token)
			common.LogDebug("Restored session", common.Fields{"user": user.ID})
			return
		}
	}

	common.LogInfo("Discarding stored session", common.Fields{"reason": err.Error()})
	if err := p.kv.Delete(ctx, persist.KeyAuthSession); err != nil {
		common.LogWarn(err, "Failed to delete stored session", nil)
	}
}

// SignUp registers a password account and signs it in.
func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	email = strings.TrimSpace(email)
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Provider:     model.ProviderPassword,
	}
	if err := p.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, common.ErrDuplicateEntry) {
			return nil, ErrEmailAlreadyInUse
		}
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	common.LogInfo("Account created", common.Fields{"user": user.ID})
	return p.startSession(ctx, user)
}

// SignIn checks a password account's credentials and signs it in.
func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	email = strings.TrimSpace(email)
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}

	user, err := p.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	if !user.HasPassword() {
		return nil, ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	return p.startSession(ctx, user)
}

// SignInFederated runs the federated flow and signs in the matching local
// account, creating it on first use.
func (p *LocalProvider) SignInFederated(ctx context.Context) (*Identity, error) {
	if p.federator == nil {
		return nil, fmt.Errorf("%w: federated sign-in is not configured", ErrAuthFailed)
	}

	profile, err := p.federator.Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("%w: federated profile has no email", ErrAuthFailed)
	}

	user, err := p.users.GetUserByEmail(ctx, profile.Email)
	switch {
	case errors.Is(err, common.ErrNotFound):
		user = &model.User{
			ID:       uuid.NewString(),
			Email:    profile.Email,
			Provider: model.ProviderGoogle,
		}
		if err := p.users.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
		}
		common.LogInfo("Account created", common.Fields{"user": user.ID, "provider": user.Provider})
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	return p.startSession(ctx, user)
}

// SignOut forgets the current user and the stored session.
func (p *LocalProvider) SignOut(ctx context.Context) error {
	if err := p.kv.Delete(ctx, persist.KeyAuthSession); err != nil {
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	p.setCurrent(nil)
	return nil
}

// CurrentUser returns the signed-in user, or nil.
func (p *LocalProvider) CurrentUser() *Identity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil {
		return nil
	}
	identity := *p.current
	return &identity
}

// Subscribe registers fn for current-user changes.
func (p *LocalProvider) Subscribe(fn func(*Identity)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.order = append(p.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.listeners, id)
			for i, existing := range p.order {
				if existing == id {
					p.order = append(p.order[:i:i], p.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (p *LocalProvider) startSession(ctx context.Context, user *model.User) (*Identity, error) {
	identity := identityFor(user, "")
	token, err := p.sessions.issue(*identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	identity.Token = token

	// A session that cannot be stored only lasts until exit.
	if err := p.kv.Set(ctx, persist.KeyAuthSession, token); err != nil {
		common.LogWarn(err, "Failed to store session", common.Fields{"user": user.ID})
	}

	p.setCurrent(identity)
	result := *identity
	return &result, nil
}

func (p *LocalProvider) setCurrent(identity *Identity) {
	p.mu.Lock()
	p.current = identity
	listeners := make([]func(*Identity), 0, len(p.order))
	for _, id := range p.order {
		listeners = append(listeners, p.listeners[id])
	}
	p.mu.Unlock()

	for _, fn := range listeners {
		if identity == nil {
			fn(nil)
			continue
		}
		snapshot := *identity
		fn(&snapshot)
	}
}

func identityFor(user *model.User, token string) *Identity {
	return &Identity{
		UID:      user.ID,
		Email:    user.Email,
		Provider: user.Provider,
		Token:    token,
	}
}
