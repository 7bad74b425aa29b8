//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/arjitrawat15/Stavia/internal/domain/customer"
	"github.com/arjitrawat15/Stavia/internal/domain/hotel"
	"github.com/arjitrawat15/Stavia/internal/domain/reservation"
	"github.com/arjitrawat15/Stavia/internal/domain/room"
	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/clock"
	"github.com/arjitrawat15/Stavia/internal/pkg/errs"
	"github.com/arjitrawat15/Stavia/internal/usecase/commands"
	"github.com/arjitrawat15/Stavia/internal/usecase/shared"
	sharedmock "github.com/arjitrawat15/Stavia/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	catalog      *sharedmock.MockCatalogStore
	customers    *sharedmock.MockCustomerRepository
	reservations *sharedmock.MockReservationRepository
	commands     commands.BookingCommands

	now     time.Time
	hotelID uuid.UUID
	roomID  uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.catalog = sharedmock.NewMockCatalogStore(s.ctrl)
	s.customers = sharedmock.NewMockCustomerRepository(s.ctrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.ctrl)

	s.now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.hotelID = uuid.New()
	s.roomID = uuid.New()

	factory := reservation.NewFactory(clock.NewMockClock(s.now), reservation.NewNightlyPriceCalculator())
	s.commands = commands.NewBookingCommands(s.uow, factory, 5*time.Second)

	s.tx.EXPECT().Catalog().Return(s.catalog).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) validInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		CallerID: uuid.New(),
		HotelID:  s.hotelID,
		RoomID:   s.roomID,
		CheckIn:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		Guests:   2,
		Contact: commands.ContactInput{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "+1 555 0100",
		},
	}
}

func (s *BookingCommandsTestSuite) availableRoom() *room.Room {
	return room.ReconstructRoom(s.roomID, s.hotelID, "101", room.TypeStandard, 10000, 2, true)
}

func (s *BookingCommandsTestSuite) testHotel() *hotel.Hotel {
	return hotel.ReconstructHotel(
		s.hotelID,
		"Grand Luxury Resort",
		hotel.Location{City: "Paris", Country: "France"},
		4.8,
		10000,
		hotel.Details{},
	)
}

func (s *BookingCommandsTestSuite) expectTransaction() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *BookingCommandsTestSuite) expectSuccessfulWrites(customerID uuid.UUID) {
	s.catalog.EXPECT().FindRoom(gomock.Any(), s.roomID).Return(s.availableRoom(), nil)
	s.catalog.EXPECT().FindHotel(gomock.Any(), s.hotelID).Return(s.testHotel(), nil)
	s.catalog.EXPECT().SaveRoomAvailability(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *room.Room) (bool, error) {
			s.False(r.IsAvailable())
			return true, nil
		})

	s.tx.EXPECT().Customers().Return(s.customers)
	s.customers.EXPECT().ResolveOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, c *customer.Customer) (*customer.Customer, error) {
			return customer.ReconstructCustomer(customerID, c.FullName(), c.Email(), c.Phone(), s.now), nil
		})

	s.tx.EXPECT().Reservations().Return(s.reservations)
	s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (*reservation.Reservation, error) {
			return res, nil
		})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Success() {
	customerID := uuid.New()
	s.expectTransaction()
	s.expectSuccessfulWrites(customerID)

	got, err := s.commands.CreateBooking(context.Background(), s.validInput())

	s.Require().NoError(err)
	s.True(strings.HasPrefix(got.BookingID, "HTL-"))
	s.Equal("HTL-"+got.ReservationID.String(), got.BookingID)
	s.Equal(int64(30000), got.TotalPrice.Cents())
	s.Equal(300.0, got.TotalPrice.Amount())
	s.Equal("CONFIRMED", got.Status)
	s.Equal(s.hotelID, got.HotelID)
	s.Equal(s.roomID, got.RoomID)
	s.Equal(s.now, got.CreatedAt)
	s.Equal(commands.BookingSummary{
		HotelName:  "Grand Luxury Resort",
		RoomType:   "Standard",
		RoomNumber: "101",
		CheckIn:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		TotalPrice: got.TotalPrice,
	}, got.Summary)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_PriceOverride() {
	tests := []struct {
		name      string
		override  float64
		wantCents int64
	}{
		{name: "positive override wins", override: 250.5, wantCents: 25050},
		{name: "zero override falls back to nightly rate", override: 0, wantCents: 30000},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.expectTransaction()
			s.expectSuccessfulWrites(uuid.New())

			in := s.validInput()
			in.TotalPrice = &tt.override

			got, err := s.commands.CreateBooking(context.Background(), in)

			s.Require().NoError(err)
			s.Equal(tt.wantCents, got.TotalPrice.Cents())
		})
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking_OneNight() {
	s.expectTransaction()
	s.expectSuccessfulWrites(uuid.New())

	in := s.validInput()
	in.CheckOut = in.CheckIn.AddDate(0, 0, 1)

	got, err := s.commands.CreateBooking(context.Background(), in)

	s.Require().NoError(err)
	s.Equal(int64(10000), got.TotalPrice.Cents())
	s.Equal(in.CheckOut, got.CheckOut)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Preconditions() {
	s.Run("zero caller is unauthenticated", func() {
		in := s.validInput()
		in.CallerID = uuid.Nil

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrUnauthenticated)
	})

	s.Run("check-out on check-in day is an invalid range", func() {
		in := s.validInput()
		in.CheckOut = in.CheckIn

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrInvalidRange)
	})

	s.Run("unauthenticated wins over invalid range", func() {
		in := s.validInput()
		in.CallerID = uuid.Nil
		in.CheckOut = in.CheckIn.Add(-24 * time.Hour)

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrUnauthenticated)
		s.NotErrorIs(err, commands.ErrInvalidRange)
	})

	s.Run("guest count out of bounds", func() {
		in := s.validInput()
		in.Guests = 11

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrInvalidBooking)
	})

	s.Run("negative price override", func() {
		in := s.validInput()
		negative := -1.0
		in.TotalPrice = &negative

		_, err := s.commands.CreateBooking(context.Background(), in)

		s.ErrorIs(err, commands.ErrInvalidBooking)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_RoomNotFound() {
	s.expectTransaction()
	s.catalog.EXPECT().FindRoom(gomock.Any(), s.roomID).
		Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

	_, err := s.commands.CreateBooking(context.Background(), s.validInput())

	s.ErrorIs(err, commands.ErrRoomNotFound)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_RoomHotelMismatch() {
	s.expectTransaction()
	other := room.ReconstructRoom(s.roomID, uuid.New(), "201", room.TypeSuite, 18000, 3, true)
	s.catalog.EXPECT().FindRoom(gomock.Any(), s.roomID).Return(other, nil)

	_, err := s.commands.CreateBooking(context.Background(), s.validInput())

	s.ErrorIs(err, commands.ErrRoomHotelMismatch)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_RoomAlreadyTaken() {
	s.expectTransaction()
	taken := room.ReconstructRoom(s.roomID, s.hotelID, "101", room.TypeStandard, 10000, 2, false)
	s.catalog.EXPECT().FindRoom(gomock.Any(), s.roomID).Return(taken, nil)

	_, err := s.commands.CreateBooking(context.Background(), s.validInput())

	s.ErrorIs(err, commands.ErrRoomUnavailable)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_LosesAvailabilityRace() {
	s.expectTransaction()
	s.catalog.EXPECT().FindRoom(gomock.Any(), s.roomID).Return(s.availableRoom(), nil)
	s.catalog.EXPECT().FindHotel(gomock.Any(), s.hotelID).Return(s.testHotel(), nil)
	s.catalog.EXPECT().SaveRoomAvailability(gomock.Any(), gomock.Any()).Return(false, nil)
	// No Customers() or Reservations() expectation: the loser must stop before any other write.

	_, err := s.commands.CreateBooking(context.Background(), s.validInput())

	s.ErrorIs(err, commands.ErrRoomUnavailable)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_StoreFailures() {
	tests := []struct {
		name    string
		txErr   error
		wantErr error
	}{
		{
			name:    "retries exhausted",
			txErr:   errs.Mark(&pgconn.PgError{Code: "40001"}, shared.ErrTxConflict),
			wantErr: commands.ErrStoreConflict,
		},
		{
			name:    "lock not available",
			txErr:   &pgconn.PgError{Code: "55P03"},
			wantErr: commands.ErrStoreConflict,
		},
		{
			name:    "deadline exceeded",
			txErr:   context.DeadlineExceeded,
			wantErr: commands.ErrStoreConflict,
		},
		{
			name:    "unexpected failure",
			txErr:   errors.New("connection reset"),
			wantErr: commands.ErrInternalFailure,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(tt.txErr)

			got, err := s.commands.CreateBooking(context.Background(), s.validInput())

			s.Nil(got)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking_AppliesTimeout() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ func(context.Context, shared.Tx) error) error {
			deadline, ok := ctx.Deadline()
			s.True(ok)
			s.WithinDuration(time.Now().Add(5*time.Second), deadline, time.Second)
			return context.DeadlineExceeded
		})

	_, err := s.commands.CreateBooking(context.Background(), s.validInput())

	s.ErrorIs(err, commands.ErrStoreConflict)
}
