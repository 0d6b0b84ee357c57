package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tjwls100/souldiary-be/internal/models"
	"github.com/tjwls100/souldiary-be/internal/storage"
)

// ListStickers returns the full catalog.
func (s *Store) ListStickers(ctx context.Context) ([]models.Sticker, error) {
	const query = `SELECT id, name, price, image_url FROM stickers ORDER BY id;`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stickers: %w", err)
	}
	defer rows.Close()

	stickers := make([]models.Sticker, 0)
	for rows.Next() {
		var st models.Sticker
		if err := rows.Scan(&st.StickerID, &st.Name, &st.Price, &st.ImageURL); err != nil {
			return nil, fmt.Errorf("scan sticker: %w", err)
		}
		stickers = append(stickers, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stickers: %w", err)
	}
	return stickers, nil
}

// ListOwnedStickers returns the user's purchase records.
func (s *Store) ListOwnedStickers(ctx context.Context, userID string) ([]models.OwnedSticker, error) {
	const query = `
		SELECT user_id, sticker_id, purchased_at
		FROM user_stickers
		WHERE user_id = $1
		ORDER BY purchased_at;`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list owned stickers: %w", err)
	}
	defer rows.Close()

	owned := make([]models.OwnedSticker, 0)
	for rows.Next() {
		var o models.OwnedSticker
		if err := rows.Scan(&o.UserID, &o.StickerID, &o.PurchasedAt); err != nil {
			return nil, fmt.Errorf("scan owned sticker: %w", err)
		}
		owned = append(owned, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list owned stickers: %w", err)
	}
	return owned, nil
}

// PurchaseSticker runs the check-grant-debit sequence in one transaction.
// The ledger row is locked first so two concurrent purchases by the same
// user cannot both pass the balance check, and the debit amount is the
// catalog price, never a client-supplied one.
func (s *Store) PurchaseSticker(ctx context.Context, userID string, stickerID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var coin int64
		err := tx.QueryRowContext(ctx,
			`SELECT coin FROM users WHERE user_id = $1 FOR UPDATE;`, userID).Scan(&coin)
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock ledger row: %w", err)
		}

		var price int64
		err = tx.QueryRowContext(ctx,
			`SELECT price FROM stickers WHERE id = $1;`, stickerID).Scan(&price)
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("read sticker price: %w", err)
		}

		if coin < price {
			return storage.ErrInsufficientFunds
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_stickers (user_id, sticker_id) VALUES ($1, $2);`, userID, stickerID); err != nil {
			if isUniqueViolation(err) {
				return storage.ErrAlreadyOwned
			}
			return fmt.Errorf("grant sticker: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET coin = coin - $1 WHERE user_id = $2;`, price, userID); err != nil {
			return fmt.Errorf("debit coin: %w", err)
		}
		return nil
	})
}
