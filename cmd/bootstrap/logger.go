package bootstrap

import (
	"log/slog"

	"vip-discount/internal/handler/middleware"
	"vip-discount/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
