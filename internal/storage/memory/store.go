// Package memory implements storage.Store in process memory, guarded by a
// single mutex. It mirrors the Postgres store's semantics, including the
// purchase invariants, and backs the handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tjwls100/souldiary-be/internal/models"
	"github.com/tjwls100/souldiary-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps all state behind one mutex; every operation is atomic with
// respect to every other, which matches the per-user serialization the
// Postgres store gets from row locking.
type Store struct {
	mu          sync.Mutex
	users       map[string]models.User
	nextUserID  int64
	diaries     map[int64]models.DiaryEntry
	nextDiaryID int64
	stickers    map[int64]models.Sticker
	owned       map[string]map[int64]models.OwnedSticker
	calendar    map[string]map[string]models.CalendarDay
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:    make(map[string]models.User),
		diaries:  make(map[int64]models.DiaryEntry),
		stickers: make(map[int64]models.Sticker),
		owned:    make(map[string]map[int64]models.OwnedSticker),
		calendar: make(map[string]map[string]models.CalendarDay),
	}
}

// SeedSticker adds a catalog item, standing in for the seed migration.
func (s *Store) SeedSticker(st models.Sticker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stickers[st.StickerID] = st
}

func (s *Store) CreateUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.UserID]; exists {
		return storage.ErrAlreadyExists
	}
	s.nextUserID++
	user.ID = s.nextUserID
	user.CreatedAt = time.Now()
	s.users[user.UserID] = user
	return nil
}

func (s *Store) FindByUserID(_ context.Context, userID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (s *Store) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return storage.ErrNotFound
	}
	user.PasswordHash = passwordHash
	s.users[userID] = user
	return nil
}

func (s *Store) CreateEntry(_ context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextDiaryID++
	entry.ID = s.nextDiaryID
	entry.CreatedAt = time.Now()
	s.diaries[entry.ID] = entry
	return entry, nil
}

func (s *Store) ListEntries(_ context.Context, userID string) ([]models.DiaryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]models.DiaryEntry, 0)
	for _, e := range s.diaries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}

func (s *Store) GetEntry(_ context.Context, userID string, id int64) (models.DiaryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.diaries[id]
	if !ok || entry.UserID != userID {
		return models.DiaryEntry{}, storage.ErrNotFound
	}
	return entry, nil
}

func (s *Store) DeleteEntry(_ context.Context, userID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.diaries[id]
	if !ok || entry.UserID != userID {
		return storage.ErrNotFound
	}
	delete(s.diaries, id)
	return nil
}

func (s *Store) ListStickers(_ context.Context) ([]models.Sticker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stickers := make([]models.Sticker, 0, len(s.stickers))
	for _, st := range s.stickers {
		stickers = append(stickers, st)
	}
	sort.Slice(stickers, func(i, j int) bool { return stickers[i].StickerID < stickers[j].StickerID })
	return stickers, nil
}

func (s *Store) ListOwnedStickers(_ context.Context, userID string) ([]models.OwnedSticker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owned := make([]models.OwnedSticker, 0)
	for _, o := range s.owned[userID] {
		owned = append(owned, o)
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].StickerID < owned[j].StickerID })
	return owned, nil
}

// PurchaseSticker performs the balance check, ownership grant, and debit
// under the store lock so concurrent purchases cannot double-spend.
func (s *Store) PurchaseSticker(_ context.Context, userID string, stickerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return storage.ErrNotFound
	}
	sticker, ok := s.stickers[stickerID]
	if !ok {
		return storage.ErrNotFound
	}
	if _, owns := s.owned[userID][stickerID]; owns {
		return storage.ErrAlreadyOwned
	}
	if user.Coin < sticker.Price {
		return storage.ErrInsufficientFunds
	}

	if s.owned[userID] == nil {
		s.owned[userID] = make(map[int64]models.OwnedSticker)
	}
	s.owned[userID][stickerID] = models.OwnedSticker{
		UserID:      userID,
		StickerID:   stickerID,
		PurchasedAt: time.Now(),
	}
	user.Coin -= sticker.Price
	s.users[userID] = user
	return nil
}

func (s *Store) SetMoodColor(_ context.Context, userID, date, color string, stickerID *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := s.day(userID, date)
	day.Color = &color
	if stickerID != nil {
		day.StickerID = stickerID
	}
	s.calendar[userID][date] = day
	return nil
}

func (s *Store) ApplySticker(_ context.Context, userID, date string, stickerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := s.day(userID, date)
	day.StickerID = &stickerID
	s.calendar[userID][date] = day
	return nil
}

func (s *Store) GetDay(_ context.Context, userID, date string) (models.CalendarDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.calendar[userID][date]
	if !ok {
		return models.CalendarDay{}, storage.ErrNotFound
	}
	return day, nil
}

func (s *Store) ListDays(_ context.Context, userID string) ([]models.CalendarDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	days := make([]models.CalendarDay, 0)
	for _, day := range s.calendar[userID] {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// day returns the existing row for the key or a fresh one. Caller holds mu.
func (s *Store) day(userID, date string) models.CalendarDay {
	if s.calendar[userID] == nil {
		s.calendar[userID] = make(map[string]models.CalendarDay)
	}
	if day, ok := s.calendar[userID][date]; ok {
		return day
	}
	return models.CalendarDay{UserID: userID, Date: date}
}
