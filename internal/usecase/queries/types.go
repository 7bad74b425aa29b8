package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type HotelView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	Country            string    `json:"country"`
	Rating             float64   `json:"rating"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	Tags               []string  `json:"tags"`
	Badge              string    `json:"badge"`
	ImageURL           string    `json:"image_url"`
	Description        string    `json:"description"`
}

type RoomView struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	RoomNumber         string    `json:"room_number"`
	RoomType           string    `json:"room_type"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	Capacity           int       `json:"capacity"`
	Available          bool      `json:"available"`
}

type BookingView struct {
	ReservationID   uuid.UUID `json:"reservation_id"`
	BookingID       string    `json:"booking_id"`
	HotelID         uuid.UUID `json:"hotel_id"`
	HotelName       string    `json:"hotel_name"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomNumber      string    `json:"room_number"`
	RoomType        string    `json:"room_type"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Guests          int       `json:"guests"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// HotelFilter narrows the hotel list. Nil fields do not filter.
type HotelFilter struct {
	City          *string  `json:"city,omitempty"`
	MinRating     *float64 `json:"min_rating,omitempty"`
	MaxPriceCents *int64   `json:"max_price_cents,omitempty"`
}
