package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tjwls100/souldiary-be/internal/models"
	"github.com/tjwls100/souldiary-be/internal/storage"
)

func seedUser(t *testing.T, s *Store, userID string, coin int64) {
	t.Helper()
	err := s.CreateUser(context.Background(), models.User{
		UserID:       userID,
		Name:         "Test User",
		PasswordHash: "hash",
		Coin:         coin,
	})
	require.NoError(t, err)
}

func TestPurchaseDebitsCatalogPrice(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedUser(t, s, "hana", 5000)
	s.SeedSticker(models.Sticker{StickerID: 7, Name: "Golden Star", Price: 3000})
	s.SeedSticker(models.Sticker{StickerID: 8, Name: "Heart Balloon", Price: 3000})

	require.NoError(t, s.PurchaseSticker(ctx, "hana", 7))

	user, err := s.FindByUserID(ctx, "hana")
	require.NoError(t, err)
	require.Equal(t, int64(2000), user.Coin)

	owned, err := s.ListOwnedStickers(ctx, "hana")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.Equal(t, int64(7), owned[0].StickerID)

	// Second 3000-coin purchase cannot be afforded; the ledger is untouched.
	err = s.PurchaseSticker(ctx, "hana", 8)
	require.ErrorIs(t, err, storage.ErrInsufficientFunds)

	user, err = s.FindByUserID(ctx, "hana")
	require.NoError(t, err)
	require.Equal(t, int64(2000), user.Coin)

	owned, err = s.ListOwnedStickers(ctx, "hana")
	require.NoError(t, err)
	require.Len(t, owned, 1)
}

func TestPurchaseRejectsRepeatOwnership(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedUser(t, s, "hana", 5000)
	s.SeedSticker(models.Sticker{StickerID: 1, Name: "Sunny Day", Price: 1000})

	require.NoError(t, s.PurchaseSticker(ctx, "hana", 1))
	err := s.PurchaseSticker(ctx, "hana", 1)
	require.ErrorIs(t, err, storage.ErrAlreadyOwned)

	user, err := s.FindByUserID(ctx, "hana")
	require.NoError(t, err)
	require.Equal(t, int64(4000), user.Coin)
}

func TestPurchaseUnknownStickerOrUser(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedUser(t, s, "hana", 5000)

	require.ErrorIs(t, s.PurchaseSticker(ctx, "hana", 99), storage.ErrNotFound)
	require.ErrorIs(t, s.PurchaseSticker(ctx, "nobody", 1), storage.ErrNotFound)
}

func TestConcurrentPurchasesCannotDoubleSpend(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedUser(t, s, "hana", 5000)
	s.SeedSticker(models.Sticker{StickerID: 1, Name: "Golden Star", Price: 3000})
	s.SeedSticker(models.Sticker{StickerID: 2, Name: "Heart Balloon", Price: 3000})

	// Only one of the two 3000-coin purchases can be afforded.
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, stickerID := range []int64{1, 2} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.PurchaseSticker(ctx, "hana", stickerID)
		}()
	}
	wg.Wait()

	var successes, rejections int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, storage.ErrInsufficientFunds)
			rejections++
		}
	}
	require.Equal(t, 1, successes)
	require.Equal(t, 1, rejections)

	user, err := s.FindByUserID(ctx, "hana")
	require.NoError(t, err)
	require.Equal(t, int64(2000), user.Coin)

	owned, err := s.ListOwnedStickers(ctx, "hana")
	require.NoError(t, err)
	require.Len(t, owned, 1)
}

func TestCalendarUpsertKeepsOneRowPerDay(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.SetMoodColor(ctx, "hana", "2024-05-01", "#FFABAB", nil))
	require.NoError(t, s.SetMoodColor(ctx, "hana", "2024-05-01", "#000000", nil))

	day, err := s.GetDay(ctx, "hana", "2024-05-01")
	require.NoError(t, err)
	require.NotNil(t, day.Color)
	require.Equal(t, "#000000", *day.Color)

	days, err := s.ListDays(ctx, "hana")
	require.NoError(t, err)
	require.Len(t, days, 1)
}

func TestApplyStickerPreservesColor(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.SetMoodColor(ctx, "hana", "2024-05-01", "#FFABAB", nil))
	require.NoError(t, s.ApplySticker(ctx, "hana", "2024-05-01", 7))

	day, err := s.GetDay(ctx, "hana", "2024-05-01")
	require.NoError(t, err)
	require.NotNil(t, day.Color)
	require.Equal(t, "#FFABAB", *day.Color)
	require.NotNil(t, day.StickerID)
	require.Equal(t, int64(7), *day.StickerID)
}

func TestColorOnlyUpdatePreservesSticker(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.ApplySticker(ctx, "hana", "2024-05-01", 7))
	require.NoError(t, s.SetMoodColor(ctx, "hana", "2024-05-01", "#FFABAB", nil))

	day, err := s.GetDay(ctx, "hana", "2024-05-01")
	require.NoError(t, err)
	require.NotNil(t, day.StickerID)
	require.Equal(t, int64(7), *day.StickerID)
}

func TestGetDayAbsentIsNotFound(t *testing.T) {
	s := New()
	_, err := s.GetDay(context.Background(), "hana", "2024-05-01")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDiaryOwnershipIndistinguishableFromAbsence(t *testing.T) {
	ctx := context.Background()
	s := New()

	entry, err := s.CreateEntry(ctx, models.DiaryEntry{
		UserID: "hana",
		Date:   "2024-05-01",
		Title:  "first entry",
		One:    "a fine day",
	})
	require.NoError(t, err)

	_, err = s.GetEntry(ctx, "minsu", entry.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.GetEntry(ctx, "minsu", 9999)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.ErrorIs(t, s.DeleteEntry(ctx, "minsu", entry.ID), storage.ErrNotFound)
	require.NoError(t, s.DeleteEntry(ctx, "hana", entry.ID))
	require.ErrorIs(t, s.DeleteEntry(ctx, "hana", entry.ID), storage.ErrNotFound)
}

func TestDuplicateSignupRejected(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedUser(t, s, "hana", 5000)

	err := s.CreateUser(ctx, models.User{UserID: "hana", Name: "Someone Else"})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}
