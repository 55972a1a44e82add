package domain

import (
	"time"

	"github.com/google/uuid"
)

// User owns sleep sessions. Timezone drives night attribution and the
// primary-window checks, so it is required at creation time.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user.
// @Description Request payload for registering a user.
type CreateUserRequest struct {
	// IANA timezone the user's wearable reports local times in
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Warsaw"`
}

// UserResponse is the response body for user endpoints.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Timezone:  u.Timezone,
		CreatedAt: u.CreatedAt,
	}
}

// Location resolves the user's timezone, falling back to UTC when the
// stored value is empty or invalid.
func (u *User) Location() *time.Location {
	if u.Timezone != "" {
		if loc, err := time.LoadLocation(u.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}
