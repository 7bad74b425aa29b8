//go:build unit

package repository

import (
	"context"
	"testing"

	"github.com/arjitrawat15/Stavia/internal/domain/room"
	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_FindRoom(t *testing.T) {
	roomID := uuid.New()
	hotelID := uuid.New()

	tests := []struct {
		name     string
		row      sqlc.Rooms
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			row: sqlc.Rooms{
				ID:                 roomID,
				HotelID:            hotelID,
				RoomNumber:         "101",
				RoomType:           "Deluxe",
				PricePerNightCents: 12000,
				Capacity:           2,
				Available:          true,
			},
		},
		{
			name:     "not found",
			mockErr:  pgx.ErrNoRows,
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockQueries)
			q.On("FindRoomByID", mock.Anything, q, roomID).Return(tt.row, tt.mockErr)

			repo := NewCatalogRepository(q, q)
			got, err := repo.FindRoom(context.Background(), roomID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, roomID, got.ID())
				assert.Equal(t, hotelID, got.HotelID())
				assert.Equal(t, room.TypeDeluxe, got.Type())
				assert.Equal(t, int64(12000), got.PricePerNightCents())
				assert.True(t, got.IsAvailable())
			}
			q.AssertExpectations(t)
		})
	}
}

func TestCatalogRepository_SaveRoomAvailability(t *testing.T) {
	tests := []struct {
		name        string
		affected    int64
		mockErr     error
		wantApplied bool
		wantErr     bool
	}{
		{name: "applied", affected: 1, wantApplied: true},
		{name: "lost the race", affected: 0, wantApplied: false},
		{name: "lock not available", mockErr: &pgconn.PgError{Code: "55P03"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := room.ReconstructRoom(uuid.New(), uuid.New(), "204", room.TypeSuite, 20000, 3, true)
			require.NoError(t, rm.Reserve())

			q := new(MockQueries)
			q.On("CompareAndSetRoomAvailability", mock.Anything, q, sqlc.CompareAndSetRoomAvailabilityParams{
				Available: false,
				ID:        rm.ID(),
				HotelID:   rm.HotelID(),
			}).Return(tt.affected, tt.mockErr)

			repo := NewCatalogRepository(q, q)
			applied, err := repo.SaveRoomAvailability(context.Background(), rm)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				var pgErr *pgconn.PgError
				assert.ErrorAs(t, err, &pgErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantApplied, applied)
			q.AssertExpectations(t)
		})
	}
}

func TestCatalogRepository_FindRoomsByHotel(t *testing.T) {
	hotelID := uuid.New()
	q := new(MockQueries)
	q.On("ListRoomsByHotel", mock.Anything, q, hotelID).Return([]sqlc.Rooms{
		{ID: uuid.New(), HotelID: hotelID, RoomNumber: "101", RoomType: "Standard", PricePerNightCents: 10000, Capacity: 2, Available: true},
		{ID: uuid.New(), HotelID: hotelID, RoomNumber: "102", RoomType: "Standard", PricePerNightCents: 10000, Capacity: 2, Available: false},
	}, nil)

	repo := NewCatalogRepository(q, q)
	rooms, err := repo.FindRoomsByHotel(context.Background(), hotelID)

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].Number())
	assert.False(t, rooms[1].IsAvailable())
}
