package queries

import (
	"context"

	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListHotels(ctx context.Context, filter HotelFilter) ([]*HotelView, error)
	GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error)
	ListRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
}

type HotelReadStore interface {
	List(ctx context.Context, db sqlc.DBTX, filter HotelFilter) ([]*HotelView, error)
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*HotelView, error)
}

type RoomReadStore interface {
	ListByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]*RoomView, error)
}

type catalogQueriesImpl struct {
	uow    shared.UnitOfWork
	hotels HotelReadStore
	rooms  RoomReadStore
}

func NewCatalogQueries(uow shared.UnitOfWork, hotels HotelReadStore, rooms RoomReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		uow:    uow,
		hotels: hotels,
		rooms:  rooms,
	}
}

func (q *catalogQueriesImpl) ListHotels(ctx context.Context, filter HotelFilter) ([]*HotelView, error) {
	var result []*HotelView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		result, err = q.hotels.List(ctx, db, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*HotelView{}
	}
	return result, nil
}

func (q *catalogQueriesImpl) GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	var result *HotelView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		result, err = q.hotels.FindByID(ctx, db, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return result, nil
}

// ListRoomsByHotel reads availability live; only the hotel lookup may be
// served from the catalog cache.
func (q *catalogQueriesImpl) ListRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error) {
	var result []*RoomView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.hotels.FindByID(ctx, db, hotelID); err != nil {
			return err
		}
		var err error
		result, err = q.rooms.ListByHotel(ctx, db, hotelID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if result == nil {
		result = []*RoomView{}
	}
	return result, nil
}
