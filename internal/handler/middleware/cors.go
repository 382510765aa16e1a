package middleware

import (
	"log/slog"
	"slices"

	"vip-discount/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// "*" cannot be combined with credentials in gin-contrib/cors
	if slices.Contains(cfg.AllowOrigins, "*") && !cfg.AllowCredentials {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "AllowAll", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
