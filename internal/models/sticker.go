package models

import "time"

// Sticker is a purchasable catalog item. The catalog is read-only and seeded
// by migration; Price is the authoritative cost in coin.
type Sticker struct {
	StickerID int64  `json:"sticker_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url"`
}

// OwnedSticker records a completed purchase. A user owns a given sticker at
// most once.
type OwnedSticker struct {
	UserID      string    `json:"user_id"`
	StickerID   int64     `json:"sticker_id"`
	PurchasedAt time.Time `json:"purchased_at"`
}
