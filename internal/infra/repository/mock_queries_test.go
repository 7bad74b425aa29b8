//go:build unit

package repository

import (
	"context"

	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type MockQueries struct {
	mock.Mock
}

func (m *MockQueries) FindRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Rooms), args.Error(1)
}

func (m *MockQueries) FindHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Hotels), args.Error(1)
}

func (m *MockQueries) ListRoomsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.Rooms, error) {
	args := m.Called(ctx, db, hotelID)
	return args.Get(0).([]sqlc.Rooms), args.Error(1)
}

func (m *MockQueries) CompareAndSetRoomAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.CompareAndSetRoomAvailabilityParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) InsertCustomerIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCustomerIfAbsentParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) FindCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Customers, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Customers), args.Error(1)
}

func (m *MockQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

// sqlc.DBTX implementation so the mock can stand in for the transaction too
func (m *MockQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}
