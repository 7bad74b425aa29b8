//go:build unit

package room_test

import (
	"testing"

	"github.com/arjitrawat15/Stavia/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	hotelID := uuid.New()

	tests := []struct {
		name     string
		number   string
		roomType room.Type
		cents    int64
		capacity int
		errIs    error
	}{
		{name: "valid", number: "101", roomType: room.TypeDeluxe, cents: 38900, capacity: 2},
		{name: "zero capacity defaults", number: "102", roomType: room.TypeStandard, cents: 100, capacity: 0},
		{name: "blank number", number: "  ", roomType: room.TypeStandard, cents: 100, errIs: room.ErrInvalidRoomNumber},
		{name: "unknown type", number: "103", roomType: room.Type("Penthouse"), cents: 100, errIs: room.ErrInvalidType},
		{name: "free room", number: "104", roomType: room.TypeSuite, cents: 0, errIs: room.ErrInvalidPrice},
		{name: "negative capacity", number: "105", roomType: room.TypeSuite, cents: 100, capacity: -1, errIs: room.ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := room.NewRoom(hotelID, tt.number, tt.roomType, tt.cents, tt.capacity)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, r.IsAvailable())
			assert.True(t, r.BelongsTo(hotelID))
			assert.Positive(t, r.Capacity())
		})
	}
}

func TestReserve(t *testing.T) {
	r := room.ReconstructRoom(uuid.New(), uuid.New(), "101", room.TypeStandard, 100, 2, true)

	require.NoError(t, r.Reserve())
	assert.False(t, r.IsAvailable())
	assert.ErrorIs(t, r.Reserve(), room.ErrAlreadyReserved)
}
