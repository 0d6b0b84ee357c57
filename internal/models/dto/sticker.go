package dto

import "github.com/tjwls100/souldiary-be/internal/models"

// BuyStickerRequest carries the client's view of the purchase. The price is
// required on the wire but the debit always uses the catalog price looked up
// server-side.
type BuyStickerRequest struct {
	StickerID int64 `json:"sticker_id"`
	Price     int64 `json:"price"`
}

type StickersResponse struct {
	IsSuccess bool             `json:"isSuccess"`
	Stickers  []models.Sticker `json:"stickers"`
}

type OwnedStickersResponse struct {
	IsSuccess bool                  `json:"isSuccess"`
	Stickers  []models.OwnedSticker `json:"stickers"`
}
