package bootstrap

import (
	"github.com/arjitrawat15/Stavia/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the full HTTP application.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	CacheModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// StoreModule wires only what the maintenance commands need.
var StoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	fx.Provide(components.NewSQLQueries),
)
