package converter

import (
	"github.com/arjitrawat15/Stavia/internal/domain/hotel"
	"github.com/arjitrawat15/Stavia/internal/domain/room"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
)

func HotelFromInfra(row sqlc.Hotels) *hotel.Hotel {
	return hotel.ReconstructHotel(
		row.ID,
		row.Name,
		hotel.Location{City: row.City, Country: row.Country},
		row.Rating,
		row.PricePerNightCents,
		hotel.Details{
			Tags:        row.Tags,
			Badge:       row.Badge,
			ImageURL:    row.ImageUrl,
			Description: row.Description,
		},
	)
}

func HotelToInfra(h *hotel.Hotel) sqlc.InsertHotelIfAbsentParams {
	loc := h.Location()
	tags := h.Tags()
	if tags == nil {
		tags = []string{}
	}
	return sqlc.InsertHotelIfAbsentParams{
		Name:               h.Name(),
		City:               loc.City,
		Country:            loc.Country,
		Rating:             h.Rating(),
		PricePerNightCents: h.PricePerNightCents(),
		Tags:               tags,
		Badge:              h.Badge(),
		ImageUrl:           h.ImageURL(),
		Description:        h.Description(),
	}
}

// RoomFromInfra trusts the stored room_type; the column carries a CHECK
// constraint on the same set of values.
func RoomFromInfra(row sqlc.Rooms) *room.Room {
	return room.ReconstructRoom(
		row.ID,
		row.HotelID,
		row.RoomNumber,
		room.Type(row.RoomType),
		row.PricePerNightCents,
		int(row.Capacity),
		row.Available,
	)
}

func RoomToInfra(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:                 r.ID(),
		HotelID:            r.HotelID(),
		RoomNumber:         r.Number(),
		RoomType:           r.Type().String(),
		PricePerNightCents: r.PricePerNightCents(),
		Capacity:           int32(r.Capacity()), // #nosec G115 -- capacity is validated small
		Available:          r.IsAvailable(),
	}
}
