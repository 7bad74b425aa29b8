package queries

import (
	"context"

	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	ListForUser(ctx context.Context, callerID, requestedUserID uuid.UUID) ([]*BookingView, error)
}

type BookingReadStore interface {
	// ListByCustomerEmail matches the email exactly and orders newest first.
	ListByCustomerEmail(ctx context.Context, db sqlc.DBTX, email string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	uow      shared.UnitOfWork
	users    UserReadStore
	bookings BookingReadStore
}

func NewBookingQueries(uow shared.UnitOfWork, users UserReadStore, bookings BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		uow:      uow,
		users:    users,
		bookings: bookings,
	}
}

// ListForUser returns the bookings whose contact email equals the caller's
// account email. Callers may only list their own bookings.
func (q *bookingQueriesImpl) ListForUser(ctx context.Context, callerID, requestedUserID uuid.UUID) ([]*BookingView, error) {
	if callerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if callerID != requestedUserID {
		return nil, ErrForbidden
	}

	var result []*BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		caller, err := q.users.FindByID(ctx, db, callerID)
		if err != nil {
			return err
		}

		result, err = q.bookings.ListByCustomerEmail(ctx, db, caller.Email)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	if result == nil {
		result = []*BookingView{}
	}
	return result, nil
}
