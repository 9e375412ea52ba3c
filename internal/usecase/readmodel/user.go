package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	IsActive   bool       `json:"isActive"`
	HasProfile bool       `json:"hasProfile"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

type ProfileRM struct {
	UserID       uuid.UUID `json:"userId"`
	FullName     string    `json:"fullName"`
	FullNameKana string    `json:"fullNameKana"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AuthTokenRM is a stored single-use token (password reset, email change,
// account-deletion confirmation). Only the hash ever reaches the database.
type AuthTokenRM struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Purpose   string
	Payload   string
	ExpiresAt time.Time
}
