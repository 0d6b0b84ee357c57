package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tjwls100/souldiary-be/internal/auth"
	"github.com/tjwls100/souldiary-be/internal/http/respond"
	"github.com/tjwls100/souldiary-be/internal/models/dto"
	"github.com/tjwls100/souldiary-be/internal/storage"
)

// StickerHandler owns the catalog, purchase, and ownership endpoints.
type StickerHandler struct {
	store storage.StickerStore
}

func NewStickerHandler(store storage.StickerStore) *StickerHandler {
	return &StickerHandler{store: store}
}

// Register attaches the sticker routes. The catalog is public; purchases and
// ownership listings require authentication.
func (h *StickerHandler) Register(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /get-stickers", h.handleCatalog)
	mux.Handle("POST /buy-sticker", requireAuth(http.HandlerFunc(h.handleBuy)))
	mux.Handle("GET /get-user-stickers", requireAuth(http.HandlerFunc(h.handleOwned)))
}

func (h *StickerHandler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	stickers, err := h.store.ListStickers(r.Context())
	if err != nil {
		log.Printf("list stickers: %v", err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.JSON(w, http.StatusOK, dto.StickersResponse{IsSuccess: true, Stickers: stickers})
}

func (h *StickerHandler) handleBuy(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.BuyStickerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.StickerID <= 0 || req.Price <= 0 {
		respond.Error(w, http.StatusBadRequest, "sticker_id and price are required")
		return
	}
	// The claimed price is validated for presence only; the transaction
	// debits the catalog price.
	if err := h.store.PurchaseSticker(r.Context(), claims.UserID, req.StickerID); err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientFunds):
			respond.Error(w, http.StatusBadRequest, "insufficient coin balance")
		case errors.Is(err, storage.ErrAlreadyOwned):
			respond.Error(w, http.StatusBadRequest, "sticker already owned")
		case errors.Is(err, storage.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "sticker not found")
		default:
			log.Printf("buy sticker %d for %q: %v", req.StickerID, claims.UserID, err)
			respond.Error(w, http.StatusInternalServerError, "server error")
		}
		return
	}
	respond.OK(w, http.StatusOK, "sticker purchased successfully")
}

func (h *StickerHandler) handleOwned(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	owned, err := h.store.ListOwnedStickers(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("list owned stickers for %q: %v", claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	if len(owned) == 0 {
		respond.Error(w, http.StatusNotFound, "no stickers found")
		return
	}
	respond.JSON(w, http.StatusOK, dto.OwnedStickersResponse{IsSuccess: true, Stickers: owned})
}
