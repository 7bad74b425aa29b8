package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange    = errors.New("check-out must be after check-in")
	ErrInvalidDate     = errors.New("dates must be formatted as YYYY-MM-DD")
	ErrInvalidGuests   = errors.New("guests must be between 1 and 10")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidStatus   = errors.New("invalid reservation status")
	ErrMissingRoom     = errors.New("room is required")
	ErrMissingCustomer = errors.New("customer is required")
)

const BookingReferencePrefix = "HTL-"

// Reservation references its room and, through it, the hotel
type Reservation struct {
	id         uuid.UUID
	roomID     uuid.UUID
	customerID uuid.UUID
	stay       StayPeriod
	guests     Guests
	totalPrice Money
	status     Status
	createdAt  time.Time
}

func NewReservation(
	roomID, customerID uuid.UUID,
	stay StayPeriod,
	guests Guests,
	totalPrice Money,
	createdAt time.Time,
) (*Reservation, error) {
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if totalPrice.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:         uuid.New(),
		roomID:     roomID,
		customerID: customerID,
		stay:       stay,
		guests:     guests,
		totalPrice: totalPrice,
		status:     StatusConfirmed,
		createdAt:  createdAt,
	}, nil
}

func ReconstructReservation(
	id, roomID, customerID uuid.UUID,
	stay StayPeriod,
	guests Guests,
	totalPrice Money,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		roomID:     roomID,
		customerID: customerID,
		stay:       stay,
		guests:     guests,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
	}
}

func (r *Reservation) BookingReference() string {
	return BookingReference(r.id)
}

func BookingReference(id uuid.UUID) string {
	return BookingReferencePrefix + id.String()
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) RoomID() uuid.UUID     { return r.roomID }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) Stay() StayPeriod      { return r.stay }
func (r *Reservation) Guests() Guests        { return r.guests }
func (r *Reservation) TotalPrice() Money     { return r.totalPrice }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
