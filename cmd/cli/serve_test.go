//go:build unit

package cli

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"

	"github.com/arjitrawat15/Stavia/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func newServerApp(t *testing.T, port string) *fxtest.App {
	cfg := config.NewTestConfig()
	cfg.Server.Port = port

	return fxtest.New(t,
		fx.Supply(cfg),
		fx.Provide(
			func() *gin.Engine { return gin.New() },
			func() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) },
		),
		fx.Invoke(startServer),
	)
}

func TestStartServer_FailsWhenPortIsTaken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	taken, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer taken.Close()
	port := strconv.Itoa(taken.Addr().(*net.TCPAddr).Port)

	app := newServerApp(t, port)

	err = app.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestStartServer_StartsAndStops(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app := newServerApp(t, "0")

	require.NoError(t, app.Start(context.Background()))
	require.NoError(t, app.Stop(context.Background()))
}
