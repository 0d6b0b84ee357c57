package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tjwls100/souldiary-be/internal/auth"
	"github.com/tjwls100/souldiary-be/internal/http/respond"
	"github.com/tjwls100/souldiary-be/internal/models"
	"github.com/tjwls100/souldiary-be/internal/models/dto"
	"github.com/tjwls100/souldiary-be/internal/storage"
)

// UserHandler owns signup, login, user info, and password-change endpoints.
type UserHandler struct {
	store       storage.UserStore
	tokens      *auth.TokenManager
	initialCoin int64
}

// NewUserHandler constructs the handler. New accounts start with initialCoin.
func NewUserHandler(store storage.UserStore, tokens *auth.TokenManager, initialCoin int64) *UserHandler {
	return &UserHandler{store: store, tokens: tokens, initialCoin: initialCoin}
}

// Register attaches the user routes to the mux.
func (h *UserHandler) Register(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /signup", h.handleSignup)
	mux.HandleFunc("POST /login", h.handleLogin)
	mux.Handle("GET /get-user-info", requireAuth(http.HandlerFunc(h.handleGetUserInfo)))
	mux.Handle("POST /change-password", requireAuth(http.HandlerFunc(h.handleChangePassword)))
}

func (h *UserHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	name := strings.TrimSpace(req.Name)
	userID := strings.TrimSpace(req.UserID)
	if name == "" || userID == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "name, user_id, and password are required")
		return
	}
	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		UserID:       userID,
		Name:         name,
		PasswordHash: passwordHash,
		Coin:         h.initialCoin,
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		// A taken user_id surfaces as a generic server error.
		log.Printf("create user %q: %v", userID, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.OK(w, http.StatusCreated, "signup successful")
}

func (h *UserHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "user_id and password are required")
		return
	}
	user, err := h.store.FindByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Printf("login: fetch user %q: %v", userID, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Printf("login: generate token for %q: %v", userID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, dto.LoginResponse{
		IsSuccess: true,
		Message:   "login successful",
		Token:     token,
		User:      dto.UserSummary{UserID: user.UserID, Name: user.Name},
	})
}

func (h *UserHandler) handleGetUserInfo(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	user, err := h.store.FindByUserID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("get user info %q: %v", claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.JSON(w, http.StatusOK, dto.UserInfoResponse{
		IsSuccess: true,
		User:      dto.UserInfo{Name: user.Name, UserID: user.UserID, Coin: user.Coin},
	})
}

func (h *UserHandler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		respond.Error(w, http.StatusBadRequest, "current and new passwords are required")
		return
	}
	user, err := h.store.FindByUserID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("change password: fetch user %q: %v", claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		respond.Error(w, http.StatusUnauthorized, "current password is incorrect")
		return
	}
	passwordHash, err := hashPassword(req.NewPassword)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}
	if err := h.store.UpdatePassword(r.Context(), claims.UserID, passwordHash); err != nil {
		log.Printf("change password: update user %q: %v", claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	respond.OK(w, http.StatusOK, "password changed successfully")
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
