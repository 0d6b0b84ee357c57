package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tjwls100/souldiary-be/internal/models"
	"github.com/tjwls100/souldiary-be/internal/storage"
)

// SetMoodColor upserts the mood color for a (user, date) key. The sticker is
// set only when one is provided; an existing sticker survives a color-only
// update. The native upsert closes the check-then-insert race.
func (s *Store) SetMoodColor(ctx context.Context, userID, date, color string, stickerID *int64) error {
	const query = `
		INSERT INTO calendar (user_id, date, color, sticker_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date)
		DO UPDATE SET color = EXCLUDED.color,
		              sticker_id = COALESCE(EXCLUDED.sticker_id, calendar.sticker_id);`
	if _, err := s.db.ExecContext(ctx, query, userID, date, color, stickerID); err != nil {
		return fmt.Errorf("set mood color: %w", err)
	}
	return nil
}

// ApplySticker upserts the sticker for a (user, date) key, leaving any
// existing color untouched.
func (s *Store) ApplySticker(ctx context.Context, userID, date string, stickerID int64) error {
	const query = `
		INSERT INTO calendar (user_id, date, sticker_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date)
		DO UPDATE SET sticker_id = EXCLUDED.sticker_id;`
	if _, err := s.db.ExecContext(ctx, query, userID, date, stickerID); err != nil {
		return fmt.Errorf("apply sticker: %w", err)
	}
	return nil
}

// GetDay fetches the state for one date. ErrNotFound means no mood or
// sticker has been set, which is a valid state.
func (s *Store) GetDay(ctx context.Context, userID, date string) (models.CalendarDay, error) {
	const query = `
		SELECT user_id, date::text, color, sticker_id
		FROM calendar
		WHERE user_id = $1 AND date = $2;`
	var day models.CalendarDay
	err := s.db.QueryRowContext(ctx, query, userID, date).
		Scan(&day.UserID, &day.Date, &day.Color, &day.StickerID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CalendarDay{}, storage.ErrNotFound
	}
	if err != nil {
		return models.CalendarDay{}, fmt.Errorf("get calendar day: %w", err)
	}
	return day, nil
}

// ListDays returns every marked day for the user, used to render the calendar.
func (s *Store) ListDays(ctx context.Context, userID string) ([]models.CalendarDay, error) {
	const query = `
		SELECT user_id, date::text, color, sticker_id
		FROM calendar
		WHERE user_id = $1
		ORDER BY date;`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list calendar days: %w", err)
	}
	defer rows.Close()

	days := make([]models.CalendarDay, 0)
	for rows.Next() {
		var day models.CalendarDay
		if err := rows.Scan(&day.UserID, &day.Date, &day.Color, &day.StickerID); err != nil {
			return nil, fmt.Errorf("scan calendar day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calendar days: %w", err)
	}
	return days, nil
}
