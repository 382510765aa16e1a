package main

import (
	"context"
	"log/slog"
	"os"

	"vip-discount/cmd/bootstrap"
	"vip-discount/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Never expose debug routes because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           vip-discount
// @version         1.0
// @description     Prices a purchase according to the buyer's membership tier.

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("Starting server",
				"address", listenAddr,
				"mode", gin.Mode(),
				"minimum_purchase_amount", cfg.Discount.MinimumPurchaseAmount,
				"vip_rate", cfg.Discount.VIPRate,
			)
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("Server failed to start", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Stopping server")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Application failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("Application failed to stop cleanly", "error", err)
	}

	slog.Info("Application stopped")
}
