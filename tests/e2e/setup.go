//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"

	"donor-booking/cmd/bootstrap"
	"donor-booking/cmd/bootstrap/components"
	"donor-booking/internal/infra/ledger"
	"donor-booking/internal/pkg/config"
	"donor-booking/internal/usecase/booking"
)

// App is one running instance assembled from the production fx modules.
type App struct {
	Router  *gin.Engine
	Service booking.Service
	Ledger  *ledger.Ledger
	Config  config.Config
}

// ------------------------------------------------------------
// Builds an instance with cfg and stops it when the test ends
// ------------------------------------------------------------
func StartApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, fxApp, err := TryStartApp(cfg)
	require.NoError(t, err, "failed to start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fxApp.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	return app
}

// ServeRPC exposes a local-only instance over HTTP and returns the URL of its wire endpoint.
func ServeRPC(t *testing.T, upstream *App) string {
	t.Helper()

	srv := httptest.NewServer(upstream.Router)
	t.Cleanup(srv.Close)
	return srv.URL + "/api/rpc"
}

// UnreachableURL returns an address nothing listens on.
func UnreachableURL(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(nil)
	url := srv.URL + "/api/rpc"
	srv.Close()
	return url
}

func RemoteConfig(mode, url string) config.Config {
	cfg := config.NewTestConfig()
	cfg.Booking.Mode = mode
	cfg.Booking.RemoteURL = url
	return cfg
}

// TryStartApp starts an instance without registering cleanup; callers stop the returned app.
func TryStartApp(cfg config.Config) (*App, *fx.App, error) {
	var out App

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return cfg
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&out.Router, &out.Service, &out.Ledger, &out.Config),

		// start without logs
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("start: %w", err)
	}
	if out.Router == nil {
		return nil, nil, fmt.Errorf("router was not populated")
	}
	return &out, app, nil
}

// ------------------------------------------------------------
// Common setup shared by the e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	App    *App
	Router *gin.Engine
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T, cfg config.Config) {
	s.App = StartApp(t, cfg)
	s.Router = s.App.Router
	s.Config = s.App.Config
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T(), config.NewTestConfig())
}

func (s *SharedSuite) SetupSubTest() {
	s.App.Service.Reset(context.Background())
}

func (s *SharedSuite) AdminID() int64 {
	return s.Config.Admin.IDs[0]
}
