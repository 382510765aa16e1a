package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (timezone, discount policy, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Discount DiscountConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// DiscountConfig defaults mirror discount.MinimumPurchaseAmount and discount.VIPDiscountRate.
type DiscountConfig struct {
	MinimumPurchaseAmount float64 `envconfig:"DISCOUNT_MINIMUM_PURCHASE_AMOUNT" default:"100"`
	VIPRate               float64 `envconfig:"DISCOUNT_VIP_RATE" default:"0.20"`
	DefaultCurrency       string  `envconfig:"DISCOUNT_DEFAULT_CURRENCY" default:"USD"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Discount: DiscountConfig{
			MinimumPurchaseAmount: 100,
			VIPRate:               0.20,
			DefaultCurrency:       "USD",
		},
	}
}
