package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the identity record. Profile data lives alongside it in a
// separate row; an identity without a profile is an incomplete
// registration and is blocked from booking.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// Profile holds the member-facing registration fields.
type Profile struct {
	userID       uuid.UUID
	fullName     string
	fullNameKana string
	phone        string
}

func NewProfile(userID uuid.UUID, fullName, fullNameKana, phone string) (*Profile, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}

	return &Profile{
		userID:       userID,
		fullName:     fullName,
		fullNameKana: strings.TrimSpace(fullNameKana),
		phone:        strings.TrimSpace(phone),
	}, nil
}

func (p *Profile) UserID() uuid.UUID    { return p.userID }
func (p *Profile) FullName() string     { return p.fullName }
func (p *Profile) FullNameKana() string { return p.fullNameKana }
func (p *Profile) Phone() string        { return p.phone }
