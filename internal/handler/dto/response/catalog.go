package response

import (
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	Rating        float64   `json:"rating"`
	PricePerNight float64   `json:"pricePerNight"`
	Tags          []string  `json:"tags"`
	Badge         string    `json:"badge,omitempty"`
	HeroImage     string    `json:"heroImage"`
	Description   string    `json:"description"`
}

func FromHotelView(v *queries.HotelView) *HotelResponse {
	return &HotelResponse{
		ID:            v.ID,
		Name:          v.Name,
		City:          v.City,
		Country:       v.Country,
		Rating:        v.Rating,
		PricePerNight: centsToAmount(v.PricePerNightCents),
		Tags:          v.Tags,
		Badge:         v.Badge,
		HeroImage:     v.ImageURL,
		Description:   v.Description,
	}
}

func FromHotelViews(views []*queries.HotelView) []*HotelResponse {
	res := make([]*HotelResponse, len(views))
	for i, v := range views {
		res[i] = FromHotelView(v)
	}
	return res
}

type RoomResponse struct {
	ID            uuid.UUID `json:"id"`
	HotelID       uuid.UUID `json:"hotelId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	PricePerNight float64   `json:"pricePerNight"`
	Capacity      int       `json:"capacity"`
	Available     bool      `json:"available"`
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	res := make([]*RoomResponse, len(views))
	for i, v := range views {
		res[i] = &RoomResponse{
			ID:            v.ID,
			HotelID:       v.HotelID,
			RoomNumber:    v.RoomNumber,
			RoomType:      v.RoomType,
			PricePerNight: centsToAmount(v.PricePerNightCents),
			Capacity:      v.Capacity,
			Available:     v.Available,
		}
	}
	return res
}
