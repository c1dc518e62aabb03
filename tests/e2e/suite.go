//go:build e2e

// Package e2e boots the whole application against a real Postgres and drives
// it through the HTTP router.
package e2e

import (
	"context"
	"sync"
	"testing"
	"time"

	"villa-booking/cmd/bootstrap"
	"villa-booking/cmd/bootstrap/components"
	reqdto "villa-booking/internal/handler/dto/request"
	"villa-booking/internal/pkg/clock"
	"villa-booking/internal/pkg/config"
	"villa-booking/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// E2ENow pins the application clock so that fixed stay dates stay in the future
// and inside the embedded holiday calendar.
var E2ENow = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

var registerValidators = sync.OnceValue(reqdto.RegisterValidators)

// SharedSuite gives each embedding suite its own database and application.
// Every subtest starts from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)
	require.NoError(t, registerValidators())

	pool, dbCfg := createDatabase(t)
	s.DB = pool
	s.Config = config.NewTestConfig()
	s.Config.DB = dbCfg
	s.Config.Store.Backend = config.BackendPostgres
	s.Router = startApp(t, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

func startApp(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.ConfigSections,
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CalendarModule,
		bootstrap.IntegrationsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Decorate(func(clock.Clock) clock.Clock { return clock.NewMockClock(E2ENow) }),
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})
	return router
}
