package dto

import (
	"time"

	"github.com/spec-kit/grooming-service/internal/domain"
)

// UserResponse is the wire form of a user.
type UserResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Administrator bool      `json:"administrator"`
	LastSeen      time.Time `json:"last_seen"`
}

// FromUser maps the domain record.
func FromUser(u domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Address:       u.Address,
		Administrator: u.Administrator,
		LastSeen:      u.LastSeen,
	}
}

// FromUsers maps a slice.
func FromUsers(items []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, FromUser(u))
	}
	return out
}
