package models

// SignupRequest is forwarded verbatim to the registration API.
type SignupRequest struct {
	Email           string `json:"email" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AuthResponse mirrors the upstream auth payload.
type AuthResponse struct {
	User    *User  `json:"user,omitempty"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
