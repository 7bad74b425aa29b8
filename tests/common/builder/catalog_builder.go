//go:build unit || e2e

package builder

import (
	"time"

	"github.com/arjitrawat15/Stavia/internal/domain/hotel"
	"github.com/arjitrawat15/Stavia/internal/domain/room"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HotelBuilder struct {
	ID                 uuid.UUID
	Name               string
	City               string
	Country            string
	Rating             float64
	PricePerNightCents int64
	Tags               []string
	Badge              string
	ImageURL           string
	Description        string
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:                 uuid.New(),
		Name:               "Grand Luxury Resort",
		City:               "Paris",
		Country:            "France",
		Rating:             4.8,
		PricePerNightCents: 29900,
		Tags:               []string{"Spa", "Pool"},
		Badge:              "Popular",
		ImageURL:           "https://example.com/hotel.jpg",
		Description:        "Test hotel",
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

func (h *HotelBuilder) BuildDomain() *hotel.Hotel {
	return hotel.ReconstructHotel(
		h.ID,
		h.Name,
		hotel.Location{City: h.City, Country: h.Country},
		h.Rating,
		h.PricePerNightCents,
		hotel.Details{Tags: h.Tags, Badge: h.Badge, ImageURL: h.ImageURL, Description: h.Description},
	)
}

func (h *HotelBuilder) BuildInfra() sqlc.Hotels {
	return sqlc.Hotels{
		ID:                 h.ID,
		Name:               h.Name,
		City:               h.City,
		Country:            h.Country,
		Rating:             h.Rating,
		PricePerNightCents: h.PricePerNightCents,
		Tags:               h.Tags,
		Badge:              h.Badge,
		ImageUrl:           h.ImageURL,
		Description:        h.Description,
		CreatedAt:          pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (h *HotelBuilder) BuildReadModel() *queries.HotelView {
	return &queries.HotelView{
		ID:                 h.ID,
		Name:               h.Name,
		City:               h.City,
		Country:            h.Country,
		Rating:             h.Rating,
		PricePerNightCents: h.PricePerNightCents,
		Tags:               h.Tags,
		Badge:              h.Badge,
		ImageURL:           h.ImageURL,
		Description:        h.Description,
	}
}

type RoomBuilder struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	Number             string
	Type               room.Type
	PricePerNightCents int64
	Capacity           int
	Available          bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:                 uuid.New(),
		HotelID:            uuid.New(),
		Number:             "101",
		Type:               room.TypeStandard,
		PricePerNightCents: 10000,
		Capacity:           2,
		Available:          true,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) InHotel(hotelID uuid.UUID) *RoomBuilder {
	r.HotelID = hotelID
	return r
}

func (r *RoomBuilder) AsReserved() *RoomBuilder {
	r.Available = false
	return r
}

func (r *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(r.ID, r.HotelID, r.Number, r.Type, r.PricePerNightCents, r.Capacity, r.Available)
}

func (r *RoomBuilder) BuildInfra() sqlc.Rooms {
	return sqlc.Rooms{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		RoomNumber:         r.Number,
		RoomType:           r.Type.String(),
		PricePerNightCents: r.PricePerNightCents,
		Capacity:           int32(r.Capacity),
		Available:          r.Available,
		UpdatedAt:          pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (r *RoomBuilder) BuildReadModel() *queries.RoomView {
	return &queries.RoomView{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		RoomNumber:         r.Number,
		RoomType:           r.Type.String(),
		PricePerNightCents: r.PricePerNightCents,
		Capacity:           r.Capacity,
		Available:          r.Available,
	}
}
