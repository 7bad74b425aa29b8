package components

import (
	"github.com/arjitrawat15/Stavia/internal/handler"
	"github.com/arjitrawat15/Stavia/internal/handler/api"
	"github.com/arjitrawat15/Stavia/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, booking *api.BookingHandler, catalog *api.CatalogHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Booking: booking, Catalog: catalog}
		},
	),
	fx.Invoke(handler.NewRouter),
)
