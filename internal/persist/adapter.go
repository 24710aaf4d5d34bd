// Package persist adapts the raw key/value storage to typed, JSON-encoded
// budget values. Reads fall back to defaults and writes never fail loudly:
// the in-memory state stays the source of truth for the session.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/monthly-budget/internal/common"
)

// Storage keys. Each is read and written independently of the others.
const (
	KeyNetSalary   = "netSalary"
	KeyExpenses    = "expenses"
	KeyIncomes     = "incomes"
	KeyGuestMode   = "guestMode"
	KeyLanguage    = "language"
	KeyAuthSession = "authSession"
	KeySessionKey  = "sessionKey"
)

// ErrCorrupt marks a stored value that could not be decoded.
var ErrCorrupt = errors.New("stored value is corrupt")

// Getter reads raw values.
type Getter interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

// Setter writes raw values.
type Setter interface {
	Set(ctx context.Context, key, value string) error
}

// KeyValue is the full raw storage contract.
type KeyValue interface {
	Getter
	Setter
	Delete(ctx context.Context, key string) error
}

// Load decodes the value stored under key into a T. A missing, empty or
// undecodable value yields def; read and decode failures are logged, never
// returned.
func Load[T any](ctx context.Context, kv Getter, key string, def T) T {
	return LoadChecked(ctx, kv, key, def, nil)
}

// LoadChecked is Load with an extra structural check run on the decoded
// value. A value failing check is treated like a corrupt one.
func LoadChecked[T any](ctx context.Context, kv Getter, key string, def T, check func(T) error) T {
	value, err := decode[T](ctx, kv, key)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			common.LogWarn(err, "Falling back to default value", common.Fields{"key": key})
		}
		return def
	}

	if check != nil {
		if err := check(value); err != nil {
			common.LogWarn(fmt.Errorf("%w: %w", ErrCorrupt, err), "Falling back to default value", common.Fields{"key": key})
			return def
		}
	}

	return value
}

func decode[T any](ctx context.Context, kv Getter, key string) (T, error) {
	var value T

	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return value, fmt.Errorf("failed to read %q: %w", key, err)
	}
	trimmed := strings.TrimSpace(raw)
	if !ok || trimmed == "" {
		return value, common.ErrNotFound
	}
	if trimmed == "null" {
		return value, fmt.Errorf("%w: null", ErrCorrupt)
	}

	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return value, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return value, nil
}

// Save encodes value and writes it under key. Failures are logged and
// dropped.
func Save(ctx context.Context, kv Setter, key string, value any) {
	encoded, err := Encode(value)
	if err != nil {
		common.LogWarn(err, "Failed to encode value", common.Fields{"key": key})
		return
	}

	if err := kv.Set(ctx, key, encoded); err != nil {
		common.LogWarn(err, "Failed to save value", common.Fields{"key": key})
	}
}

// Encode returns the stored representation of value.
func Encode(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to encode value: %w", err)
	}
	return string(data), nil
}
