package readstore

import (
	"context"

	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	ListRoomsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
}

func NewRoomReadStore(queries RoomReadQueries) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
	}
}

func (r *RoomReadStore) ListByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRoomsByHotel(ctx, db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms by hotel", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RoomView{
			ID:                 row.ID,
			HotelID:            row.HotelID,
			RoomNumber:         row.RoomNumber,
			RoomType:           row.RoomType,
			PricePerNightCents: row.PricePerNightCents,
			Capacity:           int(row.Capacity),
			Available:          row.Available,
		}
	}
	return result, nil
}
