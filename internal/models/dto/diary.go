package dto

import "github.com/tjwls100/souldiary-be/internal/models"

type AddDiaryRequest struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	One     string `json:"one"`
	Content string `json:"content"`
}

type DiariesResponse struct {
	IsSuccess bool                `json:"isSuccess"`
	Diaries   []models.DiaryEntry `json:"diaries"`
}

type DiaryResponse struct {
	IsSuccess bool              `json:"isSuccess"`
	Diary     models.DiaryEntry `json:"diary"`
}
