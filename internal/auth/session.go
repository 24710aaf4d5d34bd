package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/monthly-budget/internal/persist"
	"github.com/golang-jwt/jwt"
)

// DefaultSessionTTL is how long a sign-in stays valid across runs.
const DefaultSessionTTL = 720 * time.Hour

var (
	ErrInvalidSession = errors.New("session token is invalid")
	ErrExpiredSession = errors.New("session token is expired")
)

type sessionClaims struct {
	Email    string `json:"email"`
	Provider string `json:"provider"`
	jwt.StandardClaims
}

type sessionManager struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

func (m *sessionManager) issue(identity Identity) (string, error) {
	now := m.now()
	claims := &sessionClaims{
		Email:    identity.Email,
		Provider: string(identity.Provider),
		StandardClaims: jwt.StandardClaims{
			Subject:   identity.UID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

func (m *sessionManager) validate(tokenString string) (*sessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidSession, token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpiredSession
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// SessionSecret returns the key sessions are signed with: configured when
// set, otherwise a random per-device key created on first use and kept
// under persist.KeySessionKey.
func SessionSecret(ctx context.Context, kv persist.KeyValue, configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}

	stored, ok, err := kv.Get(ctx, persist.KeySessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session key: %w", err)
	}
	if ok && stored != "" {
		return []byte(stored), nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}
	key := hex.EncodeToString(buf)
	if err := kv.Set(ctx, persist.KeySessionKey, key); err != nil {
		return nil, fmt.Errorf("failed to store session key: %w", err)
	}
	return []byte(key), nil
}
