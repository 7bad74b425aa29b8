package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeedQueries interface {
	InsertHotelIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertHotelIfAbsentParams) (int64, error)
	FindHotelByName(ctx context.Context, db sqlc.DBTX, name string) (sqlc.Hotels, error)
	CountRoomsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) (int64, error)
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) error
}

// Seeder loads the demo catalog. Existing hotels and rooms are left as they are,
// so running it again is a no-op.
type Seeder struct {
	pool    *pgxpool.Pool
	queries SeedQueries
}

func NewSeeder(pool *pgxpool.Pool, queries SeedQueries) *Seeder {
	return &Seeder{
		pool:    pool,
		queries: queries,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	validate := validator.New()
	for _, h := range hotelCatalog {
		if err := validate.Struct(h); err != nil {
			return errs.Wrapf(err, "invalid seed hotel %q", h.Name)
		}
	}

	var hotelsAdded, roomsAdded int
	for i, h := range hotelCatalog {
		err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
			inserted, rooms, err := s.seedHotel(ctx, tx, i+1, h)
			if err != nil {
				return err
			}
			if inserted {
				hotelsAdded++
			}
			roomsAdded += rooms
			return nil
		})
		if err != nil {
			return errs.Wrapf(err, "failed to seed hotel %q", h.Name)
		}
	}

	slog.Info("catalog seeded",
		"hotels_added", hotelsAdded,
		"rooms_added", roomsAdded,
		"catalog_size", len(hotelCatalog))
	return nil
}

func (s *Seeder) seedHotel(ctx context.Context, db sqlc.DBTX, index int, h hotelSeed) (bool, int, error) {
	affected, err := s.queries.InsertHotelIfAbsent(ctx, db, sqlc.InsertHotelIfAbsentParams{
		Name:               h.Name,
		City:               h.City,
		Country:            h.Country,
		Rating:             h.Rating,
		PricePerNightCents: h.Price * 100,
		Tags:               h.Tags,
		Badge:              h.Badge,
		ImageUrl:           h.ImageURL,
		Description:        h.Description,
	})
	if err != nil {
		return false, 0, err
	}

	stored, err := s.queries.FindHotelByName(ctx, db, h.Name)
	if err != nil {
		return false, 0, err
	}

	count, err := s.queries.CountRoomsByHotel(ctx, db, stored.ID)
	if err != nil {
		return false, 0, err
	}
	if count > 0 {
		slog.Debug("hotel already has rooms", "hotel", h.Name, "rooms", count)
		return affected == 1, 0, nil
	}

	plan := planRooms(index, stored.ID, stored.PricePerNightCents)
	for _, room := range plan {
		if err := s.queries.CreateRoom(ctx, db, room); err != nil {
			return false, 0, err
		}
	}

	slog.Info("rooms created", "hotel", h.Name, "rooms", len(plan))
	return affected == 1, len(plan), nil
}

// planRooms lays out one hotel's rooms tier by tier. Prices are the base
// price times the tier multiplier, rounded to whole units.
func planRooms(hotelIndex int, hotelID uuid.UUID, basePriceCents int64) []sqlc.CreateRoomParams {
	var rooms []sqlc.CreateRoomParams
	seq := 1
	for _, tier := range roomTiers {
		price := int64(math.Round(float64(basePriceCents)/100*tier.Multiplier)) * 100
		for range tier.Count {
			rooms = append(rooms, sqlc.CreateRoomParams{
				ID:                 uuid.New(),
				HotelID:            hotelID,
				RoomNumber:         fmt.Sprintf("%d%02d", hotelIndex, seq),
				RoomType:           tier.Type.String(),
				PricePerNightCents: price,
				Capacity:           tier.Capacity,
				Available:          true,
			})
			seq++
		}
	}
	return rooms
}
