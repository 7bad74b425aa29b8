package customer

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName  = errors.New("contact name is required")
	ErrInvalidEmail = errors.New("invalid contact email")
	ErrInvalidPhone = errors.New("contact phone is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Customer is the booking contact. It is keyed by email, matched exactly
// (case-sensitive), and is not the same record as the login user.
type Customer struct {
	id        uuid.UUID
	fullName  string
	email     string
	phone     string
	createdAt time.Time
}

func NewCustomer(fullName, email, phone string) (*Customer, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrInvalidName
	}
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrInvalidPhone
	}

	return &Customer{
		id:       uuid.New(),
		fullName: fullName,
		email:    email,
		phone:    phone,
	}, nil
}

func ReconstructCustomer(id uuid.UUID, fullName, email, phone string, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		fullName:  fullName,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) FullName() string     { return c.fullName }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
