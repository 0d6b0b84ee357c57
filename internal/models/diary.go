package models

import "time"

// DiaryEntry is a dated free-text entry. Entries are immutable once written;
// the API exposes create, read, and delete only.
type DiaryEntry struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	One       string    `json:"one"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
