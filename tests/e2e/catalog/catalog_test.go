//go:build e2e

package catalog_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/arjitrawat15/Stavia/tests/common/httptest"
	"github.com/arjitrawat15/Stavia/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type catalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

type hotelItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	Rating        float64   `json:"rating"`
	PricePerNight float64   `json:"pricePerNight"`
}

type roomItem struct {
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
	Capacity      int     `json:"capacity"`
	Available     bool    `json:"available"`
}

func (s *catalogSuite) listHotels(query string) []hotelItem {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/hotels"+query, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var hotels []hotelItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hotels))
	return hotels
}

func (s *catalogSuite) TestListHotels() {
	s.Run("seeded catalog ordered by name", func() {
		hotels := s.listHotels("")
		s.Require().Len(hotels, 10)
		s.Equal("Coastal Villa Collection", hotels[0].Name)
		s.Equal("Urban Boutique Hotel", hotels[len(hotels)-1].Name)
	})

	s.Run("city filter is a case-insensitive substring", func() {
		hotels := s.listHotels("?city=PAR")
		s.Require().Len(hotels, 1)
		s.Equal("Paris", hotels[0].City)
		s.InDelta(299.0, hotels[0].PricePerNight, 0.001)
	})

	s.Run("rating and price filters combine", func() {
		hotels := s.listHotels("?minRating=4.9&maxPrice=300")
		s.Require().Len(hotels, 1)
		s.Equal("Coastal Villa Collection", hotels[0].Name)
	})

	s.Run("no match is an empty list", func() {
		s.Empty(s.listHotels("?city=atlantis"))
	})
}

func (s *catalogSuite) TestHotelDetailAndRooms() {
	s.Run("rooms follow the tier layout", func() {
		t := s.T()
		var paris hotelItem
		for _, h := range s.listHotels("?city=paris") {
			paris = h
		}
		require.NotEqual(t, uuid.Nil, paris.ID)

		detail := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/hotels/"+paris.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, detail.Code, detail.Body.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/hotels/"+paris.ID.String()+"/rooms", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rooms []roomItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
		require.Len(t, rooms, 14)
		require.Equal(t, "Standard", rooms[0].RoomType)
		require.InDelta(t, 299.0, rooms[0].PricePerNight, 0.001)
		require.Equal(t, "Presidential", rooms[13].RoomType)
		require.Equal(t, 6, rooms[13].Capacity)
		for _, r := range rooms {
			require.True(t, r.Available, "room %s", r.RoomNumber)
		}
	})

	s.Run("unknown hotel", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/hotels/"+uuid.NewString(), nil, "")
		httptest.AssertErrorKind(t, w, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *catalogSuite) TestHealth() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
}
