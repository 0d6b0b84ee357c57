package models

import "time"

// User is an account holder. UserID is the unique login handle and Coin is
// the virtual-currency balance, mutated only by the sticker purchase
// transaction.
type User struct {
	ID           int64     `json:"-"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Coin         int64     `json:"coin"`
	CreatedAt    time.Time `json:"created_at"`
}
