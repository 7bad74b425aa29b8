//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/arjitrawat15/Stavia/internal/pkg/ptr"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"
	queriesmock "github.com/arjitrawat15/Stavia/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHotelListKey(t *testing.T) {
	tests := []struct {
		name   string
		filter queries.HotelFilter
		want   string
	}{
		{
			name:   "no filter",
			filter: queries.HotelFilter{},
			want:   "catalog:hotels:city=:min_rating=:max_price=",
		},
		{
			name: "all fields",
			filter: queries.HotelFilter{
				City:          ptr.To("Paris"),
				MinRating:     ptr.To(4.5),
				MaxPriceCents: ptr.To(int64(30000)),
			},
			want: "catalog:hotels:city=paris:min_rating=4.5:max_price=30000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hotelListKey(tt.filter))
		})
	}

	t.Run("city case does not split entries", func(t *testing.T) {
		assert.Equal(t,
			hotelListKey(queries.HotelFilter{City: ptr.To("PARIS")}),
			hotelListKey(queries.HotelFilter{City: ptr.To("paris")}))
	})
}

func TestHotelKey(t *testing.T) {
	id := uuid.MustParse("6f1c3a52-0d4e-4f3a-9a55-2b1f4c7d8e90")
	assert.Equal(t, "catalog:hotel:6f1c3a52-0d4e-4f3a-9a55-2b1f4c7d8e90", hotelKey(id))
}

// unreachableClient fails every command without waiting on the network.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestHotelCache_FallsThroughWhenRedisIsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := queriesmock.NewMockHotelReadStore(ctrl)
	client := unreachableClient()
	defer client.Close()

	hotelID := uuid.New()
	want := &queries.HotelView{ID: hotelID, Name: "Grand Luxury Resort"}
	inner.EXPECT().FindByID(gomock.Any(), gomock.Any(), hotelID).Return(want, nil)
	inner.EXPECT().List(gomock.Any(), gomock.Any(), queries.HotelFilter{}).Return([]*queries.HotelView{want}, nil)

	c := NewHotelCache(inner, client, time.Minute)

	got, err := c.FindByID(context.Background(), nil, hotelID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	list, err := c.List(context.Background(), nil, queries.HotelFilter{})
	require.NoError(t, err)
	assert.Equal(t, []*queries.HotelView{want}, list)
}

func TestHotelCache_PropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := queriesmock.NewMockHotelReadStore(ctrl)
	client := unreachableClient()
	defer client.Close()

	inner.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	_, err := NewHotelCache(inner, client, time.Minute).FindByID(context.Background(), nil, uuid.New())

	assert.ErrorIs(t, err, assert.AnError)
}
