package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidType       = errors.New("invalid room type")
	ErrInvalidRoomNumber = errors.New("room number is required")
	ErrInvalidPrice      = errors.New("price per night must be positive")
	ErrInvalidCapacity   = errors.New("capacity must be positive")
	ErrAlreadyReserved   = errors.New("room is already reserved")
)

const DefaultCapacity = 2

// Room availability is the single mutable field. It only ever moves from
// available to reserved; there is no release path.
type Room struct {
	id                 uuid.UUID
	hotelID            uuid.UUID
	number             string
	roomType           Type
	pricePerNightCents int64
	capacity           int
	available          bool
}

func NewRoom(hotelID uuid.UUID, number string, roomType Type, pricePerNightCents int64, capacity int) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrInvalidRoomNumber
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidType
	}
	if pricePerNightCents <= 0 {
		return nil, ErrInvalidPrice
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:                 uuid.New(),
		hotelID:            hotelID,
		number:             number,
		roomType:           roomType,
		pricePerNightCents: pricePerNightCents,
		capacity:           capacity,
		available:          true,
	}, nil
}

func ReconstructRoom(
	id, hotelID uuid.UUID,
	number string,
	roomType Type,
	pricePerNightCents int64,
	capacity int,
	available bool,
) *Room {
	return &Room{
		id:                 id,
		hotelID:            hotelID,
		number:             number,
		roomType:           roomType,
		pricePerNightCents: pricePerNightCents,
		capacity:           capacity,
		available:          available,
	}
}

func (r *Room) BelongsTo(hotelID uuid.UUID) bool {
	return r.hotelID == hotelID
}

// Reserve flips the in-memory flag. The caller persists it with a
// conditional write so that a concurrent reservation is detected.
func (r *Room) Reserve() error {
	if !r.available {
		return ErrAlreadyReserved
	}
	r.available = false
	return nil
}

func (r *Room) ID() uuid.UUID             { return r.id }
func (r *Room) HotelID() uuid.UUID        { return r.hotelID }
func (r *Room) Number() string            { return r.number }
func (r *Room) Type() Type                { return r.roomType }
func (r *Room) PricePerNightCents() int64 { return r.pricePerNightCents }
func (r *Room) Capacity() int             { return r.capacity }
func (r *Room) IsAvailable() bool         { return r.available }
