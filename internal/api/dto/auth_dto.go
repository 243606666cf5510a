package dto

import "time"

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ResetPasswordRequestPayload asks for a reset mail.
type ResetPasswordRequestPayload struct {
	Email string `json:"email"`
}

// ResetPasswordPayload carries the new password pair.
type ResetPasswordPayload struct {
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// EditProfileRequest payload for profile updates.
type EditProfileRequest struct {
	Username string `json:"username"`
	Address  string `json:"address"`
}
