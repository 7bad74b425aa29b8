//go:build unit || e2e

package builder

import (
	"time"

	"github.com/arjitrawat15/Stavia/internal/domain/reservation"
	reqdto "github.com/arjitrawat15/Stavia/internal/handler/dto/request"
	"github.com/arjitrawat15/Stavia/internal/usecase/commands"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ReservationID uuid.UUID
	HotelID       uuid.UUID
	HotelName     string
	RoomID        uuid.UUID
	RoomNumber    string
	RoomType      string
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	ContactName   string
	ContactEmail  string
	ContactPhone  string
	TotalPrice    *float64
	TotalCents    int64
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ReservationID: uuid.New(),
		HotelID:       uuid.New(),
		HotelName:     "Grand Luxury Resort",
		RoomID:        uuid.New(),
		RoomNumber:    "101",
		RoomType:      "Standard",
		CheckIn:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		Guests:        2,
		ContactName:   "Test User",
		ContactEmail:  "test@example.com",
		ContactPhone:  "+1 555 0100",
		TotalCents:    30000,
		CreatedAt:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) ForRoom(hotelID, roomID uuid.UUID) *BookingBuilder {
	b.HotelID = hotelID
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithContactEmail(email string) *BookingBuilder {
	b.ContactEmail = email
	return b
}

// Build methods
func (b *BookingBuilder) BuildDTO() reqdto.CreateHotelBookingRequest {
	return reqdto.CreateHotelBookingRequest{
		HotelID:      b.HotelID.String(),
		RoomID:       b.RoomID.String(),
		CheckIn:      reservation.FormatDate(b.CheckIn),
		CheckOut:     reservation.FormatDate(b.CheckOut),
		Guests:       b.Guests,
		ContactName:  b.ContactName,
		ContactEmail: b.ContactEmail,
		ContactPhone: b.ContactPhone,
		TotalPrice:   b.TotalPrice,
	}
}

func (b *BookingBuilder) BuildInput(callerID uuid.UUID) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		CallerID: callerID,
		HotelID:  b.HotelID,
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		Guests:   b.Guests,
		Contact: commands.ContactInput{
			Name:  b.ContactName,
			Email: b.ContactEmail,
			Phone: b.ContactPhone,
		},
		TotalPrice: b.TotalPrice,
	}
}

func (b *BookingBuilder) BuildConfirmation() *commands.BookingConfirmation {
	total, _ := reservation.NewMoney(b.TotalCents)
	return &commands.BookingConfirmation{
		BookingID:     reservation.BookingReference(b.ReservationID),
		ReservationID: b.ReservationID,
		HotelID:       b.HotelID,
		RoomID:        b.RoomID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests:        b.Guests,
		TotalPrice:    total,
		Status:        reservation.StatusConfirmed.String(),
		CreatedAt:     b.CreatedAt,
		Summary: commands.BookingSummary{
			HotelName:  b.HotelName,
			RoomType:   b.RoomType,
			RoomNumber: b.RoomNumber,
			CheckIn:    b.CheckIn,
			CheckOut:   b.CheckOut,
			Guests:     b.Guests,
			TotalPrice: total,
		},
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	return &queries.BookingView{
		ReservationID:   b.ReservationID,
		BookingID:       reservation.BookingReference(b.ReservationID),
		HotelID:         b.HotelID,
		HotelName:       b.HotelName,
		RoomID:          b.RoomID,
		RoomNumber:      b.RoomNumber,
		RoomType:        b.RoomType,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		TotalPriceCents: b.TotalCents,
		Status:          reservation.StatusConfirmed.String(),
		CreatedAt:       b.CreatedAt,
	}
}
