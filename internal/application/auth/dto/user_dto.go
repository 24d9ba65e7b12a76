package dto

import (
	"time"

	"github.com/shiken-app/shiken/internal/domain/user"
)

// UserDTO is the profile representation returned to clients.
type UserDTO struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Image       string    `json:"image,omitempty"`
	IsAdmin     bool      `json:"is_admin"`
	IsPro       bool      `json:"is_pro"`
	TargetLevel *int      `json:"target_level,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResult bundles the signed token with the profile it represents.
type LoginResult struct {
	AccessToken string   `json:"access_token"`
	User        *UserDTO `json:"user"`
}

// ToUserDTO converts a domain user.
func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID(),
		Email:       u.Email(),
		Name:        u.Name(),
		Image:       u.Image(),
		IsAdmin:     u.IsAdmin(),
		IsPro:       u.IsPro(),
		TargetLevel: u.TargetLevel(),
		CreatedAt:   u.CreatedAt(),
	}
}
