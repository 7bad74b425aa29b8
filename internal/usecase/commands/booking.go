package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/arjitrawat15/Stavia/internal/domain/customer"
	"github.com/arjitrawat15/Stavia/internal/domain/hotel"
	"github.com/arjitrawat15/Stavia/internal/domain/reservation"
	"github.com/arjitrawat15/Stavia/internal/domain/room"
	"github.com/arjitrawat15/Stavia/internal/infra"
	"github.com/arjitrawat15/Stavia/internal/pkg/errs"
	"github.com/arjitrawat15/Stavia/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated   = errs.New("authentication required")
	ErrInvalidRange      = errs.New("check-out date must be after check-in date")
	ErrInvalidBooking    = errs.New("invalid booking request")
	ErrRoomNotFound      = errs.New("room not found")
	ErrRoomHotelMismatch = errs.New("room does not belong to the specified hotel")
	ErrRoomUnavailable   = errs.New("room is not available")
	ErrStoreConflict     = errs.New("booking could not be completed due to concurrent updates, please retry")
	ErrInternalFailure   = errs.New("booking failed")
)

// Errors that already carry their final meaning and pass through unchanged
var bookingOutcomeErrors = []error{
	ErrRoomNotFound,
	ErrRoomHotelMismatch,
	ErrRoomUnavailable,
}

type ContactInput struct {
	Name  string
	Email string
	Phone string
}

type CreateBookingInput struct {
	CallerID uuid.UUID
	HotelID  uuid.UUID
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Contact  ContactInput
	// TotalPrice overrides the computed price when set and positive
	TotalPrice *float64
}

type BookingSummary struct {
	HotelName  string
	RoomType   string
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice reservation.Money
}

type BookingConfirmation struct {
	BookingID     string
	ReservationID uuid.UUID
	HotelID       uuid.UUID
	RoomID        uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	TotalPrice    reservation.Money
	Status        string
	CreatedAt     time.Time
	Summary       BookingSummary
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingConfirmation, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	timeout time.Duration
}

func NewBookingCommands(uow shared.UnitOfWork, factory *reservation.Factory, timeout time.Duration) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		factory: factory,
		timeout: timeout,
	}
}

// CreateBooking reserves one room for a stay. The availability flip, the
// customer upsert and the reservation insert commit together or not at all.
func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingConfirmation, error) {
	if in.CallerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	stay, err := reservation.NewStayPeriod(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}

	guests, err := reservation.NewGuests(in.Guests)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	contact, err := customer.NewCustomer(in.Contact.Name, in.Contact.Email, in.Contact.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	override, err := priceOverride(in.TotalPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	var confirmation *BookingConfirmation
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		confirmation = nil

		rm, err := tx.Catalog().FindRoom(ctx, in.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if !rm.BelongsTo(in.HotelID) {
			return ErrRoomHotelMismatch
		}

		if err := rm.Reserve(); err != nil {
			return errs.Mark(err, ErrRoomUnavailable)
		}

		htl, err := tx.Catalog().FindHotel(ctx, rm.HotelID())
		if err != nil {
			return err
		}

		applied, err := tx.Catalog().SaveRoomAvailability(ctx, rm)
		if err != nil {
			return err
		}
		if !applied {
			slog.Warn("room taken by a concurrent booking",
				"room_id", rm.ID().String(),
				"hotel_id", rm.HotelID().String())
			return ErrRoomUnavailable
		}

		cust, err := tx.Customers().ResolveOrCreate(ctx, tx.DB(), contact)
		if err != nil {
			return err
		}

		res, err := b.factory.CreateReservation(rm, cust.ID(), stay, guests, override)
		if err != nil {
			return err
		}

		stored, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			return err
		}

		confirmation = newBookingConfirmation(stored, htl, rm)
		return nil
	})
	if err != nil {
		return nil, classifyBookingError(ctx, err)
	}

	slog.Info("booking confirmed",
		"reservation_id", confirmation.ReservationID.String(),
		"room_id", confirmation.RoomID.String(),
		"hotel_id", confirmation.HotelID.String())

	return confirmation, nil
}

func classifyBookingError(ctx context.Context, err error) error {
	for _, outcome := range bookingOutcomeErrors {
		if errors.Is(err, outcome) {
			return err
		}
	}

	if shared.IsContention(err) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		slog.Warn("booking aborted by store contention", "error", err.Error())
		return errs.Mark(err, ErrStoreConflict)
	}

	slog.Error("booking failed", "error", err.Error())
	return errs.Mark(err, ErrInternalFailure)
}

func priceOverride(amount *float64) (*reservation.Money, error) {
	if amount == nil {
		return nil, nil
	}
	m, err := reservation.MoneyFromAmount(*amount)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func newBookingConfirmation(res *reservation.Reservation, htl *hotel.Hotel, rm *room.Room) *BookingConfirmation {
	stay := res.Stay()
	return &BookingConfirmation{
		BookingID:     res.BookingReference(),
		ReservationID: res.ID(),
		HotelID:       htl.ID(),
		RoomID:        rm.ID(),
		CheckIn:       stay.CheckIn(),
		CheckOut:      stay.CheckOut(),
		Guests:        res.Guests().Count(),
		TotalPrice:    res.TotalPrice(),
		Status:        res.Status().String(),
		CreatedAt:     res.CreatedAt(),
		Summary: BookingSummary{
			HotelName:  htl.Name(),
			RoomType:   rm.Type().String(),
			RoomNumber: rm.Number(),
			CheckIn:    stay.CheckIn(),
			CheckOut:   stay.CheckOut(),
			Guests:     res.Guests().Count(),
			TotalPrice: res.TotalPrice(),
		},
	}
}
