package readstore

import (
	"context"

	"github.com/arjitrawat15/Stavia/internal/domain/reservation"
	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/pgconv"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"
)

type BookingViewQueries interface {
	ListReservationsByCustomerEmail(ctx context.Context, db sqlc.DBTX, email string) ([]sqlc.ListReservationsByCustomerEmailRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
}

func NewBookingReadStore(queries BookingViewQueries) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
	}
}

func (r *BookingReadStore) ListByCustomerEmail(ctx context.Context, db sqlc.DBTX, email string) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListReservationsByCustomerEmail(ctx, db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by customer email", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(row)
	}
	return result, nil
}

func toBookingView(row sqlc.ListReservationsByCustomerEmailRow) *queries.BookingView {
	return &queries.BookingView{
		ReservationID:   row.ID,
		BookingID:       reservation.BookingReference(row.ID),
		HotelID:         row.HotelID,
		HotelName:       row.HotelName,
		RoomID:          row.RoomID,
		RoomNumber:      row.RoomNumber,
		RoomType:        row.RoomType,
		CheckIn:         pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:        pgconv.DateFromPgtype(row.CheckOut),
		Guests:          int(row.Guests),
		TotalPriceCents: row.TotalPriceCents,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
