package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/mattn/go-sqlite3"
)

// CreateUser inserts a new account. An email already registered (compared
// case-insensitively) yields common.ErrDuplicateEntry.
func (s *SQLiteStorage) CreateUser(ctx context.Context, user *model.User) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUser(user); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, provider)
		VALUES (?, ?, ?, ?)`,
		user.ID, strings.TrimSpace(user.Email), user.PasswordHash, string(user.Provider))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("%w: email %s", common.ErrDuplicateEntry, user.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail looks an account up by email, case-insensitively.
// A missing account yields common.ErrNotFound.
func (s *SQLiteStorage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(email, "email"); err != nil {
		return nil, err
	}

	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, provider, created_at
		FROM users
		WHERE email = ?`, strings.TrimSpace(email)))
}

// GetUserByID looks an account up by id. A missing account yields
// common.ErrNotFound.
func (s *SQLiteStorage) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, provider, created_at
		FROM users
		WHERE id = ?`, id))
}

func (s *SQLiteStorage) scanUser(row *sql.Row) (*model.User, error) {
	var (
		user     model.User
		provider string
	)
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &provider, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	user.Provider = model.AuthProvider(provider)

	return &user, nil
}
