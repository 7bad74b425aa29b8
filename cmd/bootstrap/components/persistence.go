package components

import (
	"github.com/arjitrawat15/Stavia/internal/infra/readstore"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"
	"github.com/arjitrawat15/Stavia/internal/infra/uow"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Hotel reads are provided by the cache module.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.From(new(*sqlc.Queries)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.From(new(*sqlc.Queries)),
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.From(new(*sqlc.Queries)),
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}
