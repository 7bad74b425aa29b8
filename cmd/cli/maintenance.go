package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/arjitrawat15/Stavia/cmd/bootstrap"
	"github.com/arjitrawat15/Stavia/internal/infra/migrations"
	"github.com/arjitrawat15/Stavia/internal/infra/seed"
	sqlc "github.com/arjitrawat15/Stavia/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const maintenanceTimeout = 2 * time.Minute

type maintenanceOptions struct {
	migrate bool
	seed    bool
}

func fxLogger(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger.With("component", "fx")}
}

// Seeding implies a schema, so seed without migrate still migrates.
func runMaintenance(opts maintenanceOptions, pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) error {
	if !opts.migrate && !opts.seed {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), maintenanceTimeout)
	defer cancel()

	if err := migrations.Up(ctx, pool); err != nil {
		return err
	}
	logger.Info("migrations applied")

	if opts.seed {
		return seed.NewSeeder(pool, q).Run(ctx)
	}
	return nil
}

// runOnce starts a store-only application, runs the maintenance step and stops.
func runOnce(opts maintenanceOptions) error {
	app := fx.New(
		bootstrap.StoreModule,
		fx.WithLogger(fxLogger),
		fx.Supply(opts),
		fx.Invoke(runMaintenance),
	)
	if err := app.Err(); err != nil {
		return err
	}

	// Start and Stop only close the pool; the work already ran during Invoke.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return err
	}
	return app.Stop(ctx)
}
