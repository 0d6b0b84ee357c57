package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tjwls100/souldiary-be/internal/models"
	"github.com/tjwls100/souldiary-be/internal/storage"
)

// CreateUser inserts a new account row with its starting coin balance.
func (s *Store) CreateUser(ctx context.Context, user models.User) error {
	const query = `
		INSERT INTO users (user_id, name, password_hash, coin)
		VALUES ($1, $2, $3, $4);`
	if _, err := s.db.ExecContext(ctx, query, user.UserID, user.Name, user.PasswordHash, user.Coin); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByUserID fetches an account by its login handle.
func (s *Store) FindByUserID(ctx context.Context, userID string) (models.User, error) {
	const query = `
		SELECT id, user_id, name, password_hash, coin, created_at
		FROM users
		WHERE user_id = $1;`
	var u models.User
	err := s.db.QueryRowContext(ctx, query, userID).
		Scan(&u.ID, &u.UserID, &u.Name, &u.PasswordHash, &u.Coin, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, storage.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// UpdatePassword replaces the stored credential hash.
func (s *Store) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1 WHERE user_id = $2;`
	res, err := s.db.ExecContext(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
