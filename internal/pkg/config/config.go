package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (timezone, promotion window, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Promotion PromotionConfig
	Catalog   CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// CacheMaxAge bounds how long clients may cache catalog responses.
	// Prices inside them change at window boundaries.
	CacheMaxAge time.Duration `envconfig:"CACHE_MAX_AGE" default:"1m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"America/Chicago"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// PromotionConfig describes the weekly promotional window. Window points
// take the form "<weekday> HH:MM" and are read in Timezone.
type PromotionConfig struct {
	Timezone        string `envconfig:"PROMO_TIMEZONE" default:"America/Chicago"`
	WindowStart     string `envconfig:"PROMO_WINDOW_START" default:"friday 09:00"`
	WindowEnd       string `envconfig:"PROMO_WINDOW_END" default:"sunday 23:59"`
	PromoPrice      string `envconfig:"PROMO_PRICE" default:"179"`
	RegularPrice    string `envconfig:"PROMO_REGULAR_PRICE" default:"219"`
	Currency        string `envconfig:"PROMO_CURRENCY" default:"USD"`
	RefreshSchedule string `envconfig:"PROMO_REFRESH_SCHEDULE" default:"* * * * *"`
}

type CatalogConfig struct {
	Path string `envconfig:"CATALOG_PATH" default:"config/catalog.yaml"`
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
			Port:        "8889", // Test port
			CacheMaxAge: time.Minute,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "America/Chicago",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Promotion: PromotionConfig{
			Timezone:        "America/Chicago",
			WindowStart:     "friday 09:00",
			WindowEnd:       "sunday 23:59",
			PromoPrice:      "179",
			RegularPrice:    "219",
			Currency:        "USD",
			RefreshSchedule: "* * * * *",
		},
		Catalog: CatalogConfig{
			Path: "config/catalog.yaml",
		},
	}
}
