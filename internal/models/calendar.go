package models

// CalendarDay holds the mood state for one (user, date) pair. There is at
// most one row per key; both fields are optional and nil means "not set".
type CalendarDay struct {
	UserID    string  `json:"-"`
	Date      string  `json:"date"`
	Color     *string `json:"color"`
	StickerID *int64  `json:"sticker_id"`
}
