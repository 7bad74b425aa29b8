package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidFullName = errors.New("full name is required")

// User is the login identity. Bookings are made for a Customer, which may
// or may not share this user's email.
type User struct {
	id           uuid.UUID
	fullName     string
	email        Email
	passwordHash string
	phone        string
	createdAt    time.Time
}

func NewUser(fullName string, email Email, passwordHash, phone string) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrInvalidFullName
	}

	return &User{
		id:           uuid.New(),
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		phone:        strings.TrimSpace(phone),
	}, nil
}

func ReconstructUser(id uuid.UUID, fullName string, email Email, passwordHash, phone string, createdAt time.Time) *User {
	return &User{
		id:           id,
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) FullName() string     { return u.fullName }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Phone() string        { return u.phone }
func (u *User) CreatedAt() time.Time { return u.createdAt }
