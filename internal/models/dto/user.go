package dto

type SignupRequest struct {
	Name     string `json:"name"`
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UserSummary is the identity slice returned at login.
type UserSummary struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

type LoginResponse struct {
	IsSuccess bool        `json:"isSuccess"`
	Message   string      `json:"message"`
	Token     string      `json:"token"`
	User      UserSummary `json:"user"`
}

// UserInfo adds the coin balance to the identity for /get-user-info.
type UserInfo struct {
	Name   string `json:"name"`
	UserID string `json:"user_id"`
	Coin   int64  `json:"coin"`
}

type UserInfoResponse struct {
	IsSuccess bool     `json:"isSuccess"`
	User      UserInfo `json:"user"`
}
