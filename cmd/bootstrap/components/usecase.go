package components

import (
	"github.com/arjitrawat15/Stavia/internal/domain/reservation"
	"github.com/arjitrawat15/Stavia/internal/pkg/clock"
	"github.com/arjitrawat15/Stavia/internal/pkg/config"
	"github.com/arjitrawat15/Stavia/internal/pkg/password"
	"github.com/arjitrawat15/Stavia/internal/usecase"
	"github.com/arjitrawat15/Stavia/internal/usecase/commands"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"
	"github.com/arjitrawat15/Stavia/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	password.NewHasher,
	fx.Annotate(
		reservation.NewNightlyPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		func(uow shared.UnitOfWork, factory *reservation.Factory, cfg config.Config) commands.BookingCommands {
			return commands.NewBookingCommands(uow, factory, cfg.Booking.Timeout)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
