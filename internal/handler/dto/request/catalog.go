package request

import (
	"math"
	"strings"

	"github.com/arjitrawat15/Stavia/internal/pkg/ptr"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"
)

type HotelListQuery struct {
	City      string   `form:"city" binding:"omitempty,max=100"`
	MinRating *float64 `form:"minRating" binding:"omitempty,gte=0,lte=5"`
	MaxPrice  *float64 `form:"maxPrice" binding:"omitempty,gt=0"`
}

func (q *HotelListQuery) ToFilter() queries.HotelFilter {
	var filter queries.HotelFilter
	if city := strings.TrimSpace(q.City); city != "" {
		filter.City = ptr.To(city)
	}
	filter.MinRating = q.MinRating
	if q.MaxPrice != nil {
		filter.MaxPriceCents = ptr.To(int64(math.Round(*q.MaxPrice * 100)))
	}
	return filter
}
