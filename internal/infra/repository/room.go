package repository

import (
	"context"

	"github.com/arjitrawat15/Stavia/internal/domain/hotel"
	"github.com/arjitrawat15/Stavia/internal/domain/room"
	"github.com/arjitrawat15/Stavia/internal/infra"
	"github.com/arjitrawat15/Stavia/internal/infra/repository/converter"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	FindRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	FindHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
	ListRoomsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.Rooms, error)
	CompareAndSetRoomAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.CompareAndSetRoomAvailabilityParams) (int64, error)
}

// CatalogRepository is bound to one transaction.
type CatalogRepository struct {
	queries CatalogQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) FindRoom(ctx context.Context, roomID uuid.UUID) (*room.Room, error) {
	row, err := r.queries.FindRoomByID(ctx, r.db, roomID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return converter.RoomFromInfra(row), nil
}

func (r *CatalogRepository) FindHotel(ctx context.Context, hotelID uuid.UUID) (*hotel.Hotel, error) {
	row, err := r.queries.FindHotelByID(ctx, r.db, hotelID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	return converter.HotelFromInfra(row), nil
}

func (r *CatalogRepository) FindRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.Room, error) {
	rows, err := r.queries.ListRoomsByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms by hotel", err)
	}

	result := make([]*room.Room, len(rows))
	for i, row := range rows {
		result[i] = converter.RoomFromInfra(row)
	}
	return result, nil
}

func (r *CatalogRepository) SaveRoomAvailability(ctx context.Context, rm *room.Room) (bool, error) {
	affected, err := r.queries.CompareAndSetRoomAvailability(ctx, r.db, sqlc.CompareAndSetRoomAvailabilityParams{
		Available: rm.IsAvailable(),
		ID:        rm.ID(),
		HotelID:   rm.HotelID(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update room availability", err)
	}
	return affected == 1, nil
}
