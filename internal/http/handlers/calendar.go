package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/tjwls100/souldiary-be/internal/auth"
	"github.com/tjwls100/souldiary-be/internal/http/respond"
	"github.com/tjwls100/souldiary-be/internal/models/dto"
	"github.com/tjwls100/souldiary-be/internal/storage"
)

// CalendarHandler owns the per-day mood color and sticker endpoints.
type CalendarHandler struct {
	store storage.CalendarStore
}

func NewCalendarHandler(store storage.CalendarStore) *CalendarHandler {
	return &CalendarHandler{store: store}
}

// Register attaches the calendar routes, all behind authentication.
func (h *CalendarHandler) Register(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("POST /set-mood-color", requireAuth(http.HandlerFunc(h.handleSetMoodColor)))
	mux.Handle("GET /get-mood-color", requireAuth(http.HandlerFunc(h.handleGetMoodColor)))
	mux.Handle("GET /get-user-calendar", requireAuth(http.HandlerFunc(h.handleListDays)))
	mux.Handle("POST /apply-sticker", requireAuth(http.HandlerFunc(h.handleApplySticker)))
}

func (h *CalendarHandler) handleSetMoodColor(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.SetMoodColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Color) == "" {
		respond.Error(w, http.StatusBadRequest, "date and color are required")
		return
	}
	if !validDate(req.Date) {
		respond.Error(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}
	if err := h.store.SetMoodColor(r.Context(), claims.UserID, req.Date, req.Color, req.StickerID); err != nil {
		log.Printf("set mood color for %q on %s: %v", claims.UserID, req.Date, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.OK(w, http.StatusOK, "mood color set successfully")
}

func (h *CalendarHandler) handleGetMoodColor(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	date := r.URL.Query().Get("date")
	if strings.TrimSpace(date) == "" {
		respond.Error(w, http.StatusBadRequest, "date is required")
		return
	}
	if !validDate(date) {
		respond.Error(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}
	day, err := h.store.GetDay(r.Context(), claims.UserID, date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// No mood set for this date is a valid state, not an error.
			respond.JSON(w, http.StatusOK, respond.Envelope{IsSuccess: false, Message: "no data for this date"})
			return
		}
		log.Printf("get mood color for %q on %s: %v", claims.UserID, date, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.JSON(w, http.StatusOK, dto.MoodColorResponse{
		IsSuccess: true,
		Color:     day.Color,
		StickerID: day.StickerID,
	})
}

func (h *CalendarHandler) handleListDays(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	days, err := h.store.ListDays(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("list calendar for %q: %v", claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.JSON(w, http.StatusOK, dto.CalendarResponse{IsSuccess: true, Data: days})
}

func (h *CalendarHandler) handleApplySticker(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.ApplyStickerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.StickerID <= 0 || strings.TrimSpace(req.Date) == "" {
		respond.Error(w, http.StatusBadRequest, "sticker_id and date are required")
		return
	}
	if !validDate(req.Date) {
		respond.Error(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}
	if err := h.store.ApplySticker(r.Context(), claims.UserID, req.Date, req.StickerID); err != nil {
		log.Printf("apply sticker %d for %q on %s: %v", req.StickerID, claims.UserID, req.Date, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.OK(w, http.StatusOK, "sticker applied successfully")
}

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}
