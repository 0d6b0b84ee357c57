package dto

import "github.com/tjwls100/souldiary-be/internal/models"

type SetMoodColorRequest struct {
	Date      string `json:"date"`
	Color     string `json:"color"`
	StickerID *int64 `json:"sticker_id"`
}

type ApplyStickerRequest struct {
	StickerID int64  `json:"sticker_id"`
	Date      string `json:"date"`
}

type MoodColorResponse struct {
	IsSuccess bool    `json:"isSuccess"`
	Color     *string `json:"color"`
	StickerID *int64  `json:"sticker_id"`
}

type CalendarResponse struct {
	IsSuccess bool                 `json:"isSuccess"`
	Data      []models.CalendarDay `json:"data"`
}
