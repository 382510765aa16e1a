//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vip-discount/cmd/bootstrap"
	"vip-discount/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, cfg config.Config) (*gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	router, resolved, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			t.Logf("failed to stop fx app: %v", err)
		}
	})

	return router, resolved
}

func buildE2EApp(cfg config.Config) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var resolved config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Provide(bootstrap.NewDiscountPolicy),
		bootstrap.LoggerModule,
		bootstrap.UseCaseAndHandlerModules(),

		fx.Populate(&router, &resolved),

		// start without fx's own logging
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx application did not provide a router")
	}

	return router, resolved, app
}

type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

// SetupSharedSuite lets a suite adjust the test configuration before the app starts.
func (s *SharedSuite) SetupSharedSuite(t *testing.T, override func(*config.Config)) {
	cfg := config.NewTestConfig()
	if override != nil {
		override(&cfg)
	}
	s.Router, s.Config = setupE2EEnvironment(t, cfg)
	require.NotEmpty(t, s.Config, "config was not resolved")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T(), nil)
}
