//go:build unit

package readstore

import (
	"context"
	"math"
	"testing"

	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/ptr"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"
	"github.com/arjitrawat15/Stavia/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHotelReadQueries struct {
	mock.Mock
}

func (m *MockHotelReadQueries) ListHotels(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHotelsParams) ([]sqlc.Hotels, error) {
	args := m.Called(ctx, db, arg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sqlc.Hotels), args.Error(1)
}

func (m *MockHotelReadQueries) FindHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Hotels), args.Error(1)
}

func TestToListHotelsParams(t *testing.T) {
	tests := []struct {
		name   string
		filter queries.HotelFilter
		want   sqlc.ListHotelsParams
	}{
		{
			name:   "empty filter matches everything",
			filter: queries.HotelFilter{},
			want:   sqlc.ListHotelsParams{},
		},
		{
			name: "all fields set",
			filter: queries.HotelFilter{
				City:          ptr.To("par"),
				MinRating:     ptr.To(4.5),
				MaxPriceCents: ptr.To(int64(30000)),
			},
			want: sqlc.ListHotelsParams{
				City:          pgtype.Text{String: "par", Valid: true},
				MinRating:     pgtype.Float8{Float64: 4.5, Valid: true},
				MaxPriceCents: pgtype.Int8{Int64: 30000, Valid: true},
			},
		},
		{
			name: "blank city and NaN rating are ignored",
			filter: queries.HotelFilter{
				City:      ptr.To(""),
				MinRating: ptr.To(math.NaN()),
			},
			want: sqlc.ListHotelsParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toListHotelsParams(tt.filter))
		})
	}
}

func TestHotelReadStore_List(t *testing.T) {
	paris := builder.NewHotelBuilder().BuildInfra()
	noTags := builder.NewHotelBuilder().With(func(h *builder.HotelBuilder) {
		h.Name = "Budget Inn"
		h.Tags = nil
	}).BuildInfra()

	mockQueries := new(MockHotelReadQueries)
	mockQueries.On("ListHotels", mock.Anything, mock.Anything, sqlc.ListHotelsParams{}).
		Return([]sqlc.Hotels{paris, noTags}, nil)

	got, err := NewHotelReadStore(mockQueries).List(context.Background(), nil, queries.HotelFilter{})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, paris.Name, got[0].Name)
	assert.Equal(t, paris.ImageUrl, got[0].ImageURL)
	assert.Equal(t, []string{"Spa", "Pool"}, got[0].Tags)
	assert.NotNil(t, got[1].Tags)
	assert.Empty(t, got[1].Tags)
	mockQueries.AssertExpectations(t)
}

func TestHotelReadStore_FindByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockHotelReadQueries)
		mockQueries.On("FindHotelByID", mock.Anything, mock.Anything, id).Return(sqlc.Hotels{}, pgx.ErrNoRows)

		got, err := NewHotelReadStore(mockQueries).FindByID(context.Background(), nil, id)

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("found", func(t *testing.T) {
		row := builder.NewHotelBuilder().BuildInfra()
		mockQueries := new(MockHotelReadQueries)
		mockQueries.On("FindHotelByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		got, err := NewHotelReadStore(mockQueries).FindByID(context.Background(), nil, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID)
		assert.Equal(t, row.PricePerNightCents, got.PricePerNightCents)
	})
}
