package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tjwls100/souldiary-be/internal/auth"
	"github.com/tjwls100/souldiary-be/internal/http/respond"
	"github.com/tjwls100/souldiary-be/internal/models"
	"github.com/tjwls100/souldiary-be/internal/models/dto"
	"github.com/tjwls100/souldiary-be/internal/storage"
)

const dateLayout = "2006-01-02"

// DiaryHandler owns the diary CRUD endpoints, all scoped to the caller.
type DiaryHandler struct {
	store storage.DiaryStore
}

func NewDiaryHandler(store storage.DiaryStore) *DiaryHandler {
	return &DiaryHandler{store: store}
}

// Register attaches the diary routes to the mux, all behind authentication.
func (h *DiaryHandler) Register(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("GET /get-diaries", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("GET /get-diary/{id}", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("POST /add-diary", requireAuth(http.HandlerFunc(h.handleAdd)))
	mux.Handle("DELETE /delete-diary/{id}", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *DiaryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	entries, err := h.store.ListEntries(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("list diaries for %q: %v", claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.JSON(w, http.StatusOK, dto.DiariesResponse{IsSuccess: true, Diaries: entries})
}

func (h *DiaryHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid diary id")
		return
	}
	entry, err := h.store.GetEntry(r.Context(), claims.UserID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "diary not found")
			return
		}
		log.Printf("get diary %d for %q: %v", id, claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.JSON(w, http.StatusOK, dto.DiaryResponse{IsSuccess: true, Diary: entry})
}

func (h *DiaryHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.AddDiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Title) == "" {
		respond.Error(w, http.StatusBadRequest, "date and title are required")
		return
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		respond.Error(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}
	entry := models.DiaryEntry{
		UserID:  claims.UserID,
		Date:    req.Date,
		Title:   strings.TrimSpace(req.Title),
		One:     req.One,
		Content: req.Content,
	}
	if _, err := h.store.CreateEntry(r.Context(), entry); err != nil {
		log.Printf("add diary for %q: %v", claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.OK(w, http.StatusOK, "diary added successfully")
}

func (h *DiaryHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid diary id")
		return
	}
	if err := h.store.DeleteEntry(r.Context(), claims.UserID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "diary not found")
			return
		}
		log.Printf("delete diary %d for %q: %v", id, claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.OK(w, http.StatusOK, "diary deleted successfully")
}
