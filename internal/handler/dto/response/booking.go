package response

import (
	"time"

	"github.com/arjitrawat15/Stavia/internal/domain/reservation"
	"github.com/arjitrawat15/Stavia/internal/usecase/commands"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingSummaryResponse struct {
	Hotel      string  `json:"hotel"`
	Room       string  `json:"room"`
	RoomNumber string  `json:"roomNumber"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"totalPrice"`
}

type BookingResponse struct {
	BookingID     string                 `json:"bookingId"`
	ReservationID uuid.UUID              `json:"reservationId"`
	HotelID       uuid.UUID              `json:"hotelId"`
	RoomID        uuid.UUID              `json:"roomId"`
	CheckIn       string                 `json:"checkIn"`
	CheckOut      string                 `json:"checkOut"`
	Guests        int                    `json:"guests"`
	TotalPrice    float64                `json:"totalPrice"`
	Status        string                 `json:"status"`
	CreatedAt     time.Time              `json:"createdAt"`
	Summary       BookingSummaryResponse `json:"summary"`
}

func FromBookingConfirmation(c *commands.BookingConfirmation) *BookingResponse {
	return &BookingResponse{
		BookingID:     c.BookingID,
		ReservationID: c.ReservationID,
		HotelID:       c.HotelID,
		RoomID:        c.RoomID,
		CheckIn:       reservation.FormatDate(c.CheckIn),
		CheckOut:      reservation.FormatDate(c.CheckOut),
		Guests:        c.Guests,
		TotalPrice:    c.TotalPrice.Amount(),
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		Summary: BookingSummaryResponse{
			Hotel:      c.Summary.HotelName,
			Room:       c.Summary.RoomType,
			RoomNumber: c.Summary.RoomNumber,
			CheckIn:    reservation.FormatDate(c.Summary.CheckIn),
			CheckOut:   reservation.FormatDate(c.Summary.CheckOut),
			Guests:     c.Summary.Guests,
			TotalPrice: c.Summary.TotalPrice.Amount(),
		},
	}
}

type BookingListItemResponse struct {
	BookingID     string    `json:"bookingId"`
	ReservationID uuid.UUID `json:"reservationId"`
	HotelID       uuid.UUID `json:"hotelId"`
	HotelName     string    `json:"hotelName"`
	RoomID        uuid.UUID `json:"roomId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Guests        int       `json:"guests"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingViews(views []*queries.BookingView) []*BookingListItemResponse {
	res := make([]*BookingListItemResponse, len(views))
	for i, v := range views {
		res[i] = &BookingListItemResponse{
			BookingID:     v.BookingID,
			ReservationID: v.ReservationID,
			HotelID:       v.HotelID,
			HotelName:     v.HotelName,
			RoomID:        v.RoomID,
			RoomNumber:    v.RoomNumber,
			RoomType:      v.RoomType,
			CheckIn:       reservation.FormatDate(v.CheckIn),
			CheckOut:      reservation.FormatDate(v.CheckOut),
			Guests:        v.Guests,
			TotalPrice:    centsToAmount(v.TotalPriceCents),
			Status:        v.Status,
			CreatedAt:     v.CreatedAt,
		}
	}
	return res
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100.0
}
