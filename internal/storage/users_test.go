package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_CreateAndGetUser(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	user := &model.User{
		ID:           "u-1",
		Email:        "ada@example.com",
		PasswordHash: "hash",
		Provider:     model.ProviderPassword,
	}
	require.NoError(t, store.CreateUser(ctx, user))

	byEmail, err := store.GetUserByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", byEmail.ID)
	assert.Equal(t, "ada@example.com", byEmail.Email)
	assert.Equal(t, model.ProviderPassword, byEmail.Provider)
	assert.True(t, byEmail.HasPassword())
	assert.False(t, byEmail.CreatedAt.IsZero())

	byID, err := store.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, byEmail.Email, byID.Email)
}

func TestSQLiteStorage_CreateUserDuplicateEmail(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &model.User{
		ID: "u-1", Email: "ada@example.com", Provider: model.ProviderPassword, PasswordHash: "h",
	}))

	err := store.CreateUser(ctx, &model.User{
		ID: "u-2", Email: "Ada@Example.com", Provider: model.ProviderGoogle,
	})
	assert.True(t, errors.Is(err, common.ErrDuplicateEntry), "got %v", err)
}

func TestSQLiteStorage_GetUserNotFound(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.GetUserByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	_, err = store.GetUserByID(ctx, "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSQLiteStorage_CreateUserValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		user *model.User
		name string
	}{
		{name: "nil user", user: nil},
		{name: "missing id", user: &model.User{Email: "a@b.co", Provider: model.ProviderPassword}},
		{name: "missing email", user: &model.User{ID: "x", Provider: model.ProviderPassword}},
		{name: "missing provider", user: &model.User{ID: "x", Email: "a@b.co"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, store.CreateUser(ctx, tt.user))
		})
	}
}
