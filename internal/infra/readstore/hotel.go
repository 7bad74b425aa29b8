package readstore

import (
	"context"
	"math"

	"github.com/arjitrawat15/Stavia/internal/infra"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/pgconv"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HotelReadQueries interface {
	ListHotels(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHotelsParams) ([]sqlc.Hotels, error)
	FindHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
}

type HotelReadStore struct {
	queries HotelReadQueries
}

func NewHotelReadStore(queries HotelReadQueries) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
	}
}

func (r *HotelReadStore) List(ctx context.Context, db sqlc.DBTX, filter queries.HotelFilter) ([]*queries.HotelView, error) {
	rows, err := r.queries.ListHotels(ctx, db, toListHotelsParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}

	result := make([]*queries.HotelView, len(rows))
	for i, row := range rows {
		result[i] = toHotelView(row)
	}
	return result, nil
}

func (r *HotelReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.HotelView, error) {
	row, err := r.queries.FindHotelByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	return toHotelView(row), nil
}

func toListHotelsParams(filter queries.HotelFilter) sqlc.ListHotelsParams {
	var params sqlc.ListHotelsParams
	if filter.City != nil && *filter.City != "" {
		params.City = pgtype.Text{String: *filter.City, Valid: true}
	}
	if filter.MinRating != nil && !math.IsNaN(*filter.MinRating) {
		params.MinRating = pgtype.Float8{Float64: *filter.MinRating, Valid: true}
	}
	if filter.MaxPriceCents != nil {
		params.MaxPriceCents = pgtype.Int8{Int64: *filter.MaxPriceCents, Valid: true}
	}
	return params
}

func toHotelView(row sqlc.Hotels) *queries.HotelView {
	tags := row.Tags
	if tags == nil {
		tags = []string{}
	}
	return &queries.HotelView{
		ID:                 row.ID,
		Name:               row.Name,
		City:               row.City,
		Country:            row.Country,
		Rating:             row.Rating,
		PricePerNightCents: row.PricePerNightCents,
		Tags:               tags,
		Badge:              row.Badge,
		ImageURL:           row.ImageUrl,
		Description:        row.Description,
	}
}
