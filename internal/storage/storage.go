package storage

import (
	"context"
	"errors"

	"github.com/tjwls100/souldiary-be/internal/models"
)

// ErrNotFound indicates a record does not exist (or is not visible to the
// caller; diary lookups deliberately do not distinguish the two).
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrInsufficientFunds indicates the coin balance cannot cover a purchase.
// The ledger is left untouched.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAlreadyOwned indicates the user already owns the sticker. No debit
// happens for a repeat purchase.
var ErrAlreadyOwned = errors.New("sticker already owned")

// UserStore captures account persistence used by the user handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	FindByUserID(ctx context.Context, userID string) (models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// DiaryStore is CRUD over diary entries, always scoped to the owner.
type DiaryStore interface {
	CreateEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error)
	ListEntries(ctx context.Context, userID string) ([]models.DiaryEntry, error)
	GetEntry(ctx context.Context, userID string, id int64) (models.DiaryEntry, error)
	DeleteEntry(ctx context.Context, userID string, id int64) error
}

// StickerStore covers the catalog, ownership, and the purchase transaction.
//
// PurchaseSticker must run the balance check, the ownership grant, and the
// debit as one atomic unit: on any failure no partial state is visible, and
// two concurrent purchases by one user are serialized against each other.
type StickerStore interface {
	ListStickers(ctx context.Context) ([]models.Sticker, error)
	ListOwnedStickers(ctx context.Context, userID string) ([]models.OwnedSticker, error)
	PurchaseSticker(ctx context.Context, userID string, stickerID int64) error
}

// CalendarStore upserts per-day mood state keyed by (user, date). Absence of
// a day is a valid state, reported as ErrNotFound by GetDay.
type CalendarStore interface {
	SetMoodColor(ctx context.Context, userID, date, color string, stickerID *int64) error
	ApplySticker(ctx context.Context, userID, date string, stickerID int64) error
	GetDay(ctx context.Context, userID, date string) (models.CalendarDay, error)
	ListDays(ctx context.Context, userID string) ([]models.CalendarDay, error)
}

// Store is the full persistence surface of the application.
type Store interface {
	UserStore
	DiaryStore
	StickerStore
	CalendarStore
}
