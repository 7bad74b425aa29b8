package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/arjitrawat15/Stavia/cmd/bootstrap"
	"github.com/arjitrawat15/Stavia/internal/pkg/config"
	"github.com/arjitrawat15/Stavia/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCmd() *cobra.Command {
	var opts maintenanceOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := fx.New(
				bootstrap.Module,
				fx.WithLogger(fxLogger),
				fx.Provide(
					func() *gin.Engine {
						return gin.New()
					},
				),
				fx.Supply(opts),
				fx.Invoke(
					runMaintenance,
					startServer,
				),
			)

			if err := app.Start(cmd.Context()); err != nil {
				return err
			}

			sig := <-app.Wait()

			if err := app.Stop(context.Background()); err != nil {
				slog.Error("failed to stop application", "error", err)
			}

			slog.Info("application stopped")
			if sig.ExitCode != 0 {
				return fmt.Errorf("server exited with code %d", sig.ExitCode)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.migrate, "migrate", false, "apply database migrations before serving")
	cmd.Flags().BoolVar(&opts.seed, "seed", false, "load the demo catalog before serving")

	return cmd
}

func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	gin.EnableJsonDecoderDisallowUnknownFields()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return errs.Wrapf(err, "failed to listen on %s", srv.Addr)
			}

			logger.Info("starting server", "address", ln.Addr().String(), "mode", gin.Mode())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
					if err := shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
						logger.Error("failed to request shutdown", "error", err)
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
