package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tjwls100/souldiary-be/internal/models"
	"github.com/tjwls100/souldiary-be/internal/storage"
)

// CreateEntry inserts a diary entry and returns it with its assigned id.
func (s *Store) CreateEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	const query = `
		INSERT INTO diary (user_id, date, title, one, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;`
	err := s.db.QueryRowContext(ctx, query, entry.UserID, entry.Date, entry.Title, entry.One, entry.Content).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("create diary entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns all entries belonging to the user, newest first.
func (s *Store) ListEntries(ctx context.Context, userID string) ([]models.DiaryEntry, error) {
	const query = `
		SELECT id, user_id, date::text, title, one, content, created_at
		FROM diary
		WHERE user_id = $1
		ORDER BY date DESC, id DESC;`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.DiaryEntry, 0)
	for rows.Next() {
		var e models.DiaryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Title, &e.One, &e.Content, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan diary entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	return entries, nil
}

// GetEntry fetches one entry. An entry owned by another user is reported the
// same way as a nonexistent id.
func (s *Store) GetEntry(ctx context.Context, userID string, id int64) (models.DiaryEntry, error) {
	const query = `
		SELECT id, user_id, date::text, title, one, content, created_at
		FROM diary
		WHERE id = $1 AND user_id = $2;`
	var e models.DiaryEntry
	err := s.db.QueryRowContext(ctx, query, id, userID).
		Scan(&e.ID, &e.UserID, &e.Date, &e.Title, &e.One, &e.Content, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DiaryEntry{}, storage.ErrNotFound
	}
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("get diary entry: %w", err)
	}
	return e, nil
}

// DeleteEntry removes an entry if the caller owns it.
func (s *Store) DeleteEntry(ctx context.Context, userID string, id int64) error {
	const query = `DELETE FROM diary WHERE id = $1 AND user_id = $2;`
	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete diary entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
