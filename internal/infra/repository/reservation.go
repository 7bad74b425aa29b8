package repository

import (
	"context"

	"github.com/arjitrawat15/Stavia/internal/domain/reservation"
	"github.com/arjitrawat15/Stavia/internal/infra"
	"github.com/arjitrawat15/Stavia/internal/infra/repository/converter"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (*reservation.Reservation, error) {
	row, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToInfra(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	stored, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read back reservation", err)
	}
	return stored, nil
}
