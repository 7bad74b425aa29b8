package request

import (
	"time"

	"github.com/arjitrawat15/Stavia/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateHotelBookingRequest struct {
	HotelID      string   `json:"hotelId" binding:"required,uuid"`
	RoomID       string   `json:"roomId" binding:"required,uuid"`
	CheckIn      string   `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut     string   `json:"checkOut" binding:"required,datetime=2006-01-02"`
	Guests       int      `json:"guests" binding:"required,min=1,max=10"`
	ContactName  string   `json:"contactName" binding:"required,max=255"`
	ContactEmail string   `json:"contactEmail" binding:"required,email"`
	ContactPhone string   `json:"contactPhone" binding:"required,max=50"`
	TotalPrice   *float64 `json:"totalPrice,omitempty" binding:"omitempty,gte=0"`
}

// ToInput assumes the request already passed binding validation.
func (r *CreateHotelBookingRequest) ToInput(callerID uuid.UUID) (commands.CreateBookingInput, error) {
	hotelID, err := uuid.Parse(r.HotelID)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	roomID, err := uuid.Parse(r.RoomID)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	return commands.CreateBookingInput{
		CallerID: callerID,
		HotelID:  hotelID,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   r.Guests,
		Contact: commands.ContactInput{
			Name:  r.ContactName,
			Email: r.ContactEmail,
			Phone: r.ContactPhone,
		},
		TotalPrice: r.TotalPrice,
	}, nil
}
