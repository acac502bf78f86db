package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig is the process configuration, read from the environment (and an
// optional .env file).
type AppConfig struct {
	OpenWeatherAPIKey    string `envconfig:"OPENWEATHER_API_KEY"`
	WeatherAPIKey        string `envconfig:"WEATHERAPI_API_KEY"`
	MeteostatAPIKey      string `envconfig:"METEOSTAT_API_KEY"`
	GoogleGeocoderAPIKey string `envconfig:"GOOGLE_GEOCODER_API_KEY"`

	// HistorySource selects the historical station-data backend.
	HistorySource string `envconfig:"HISTORY_SOURCE" default:"meteostat" validate:"oneof=meteostat openmeteo"`
	HistoryDays   int    `envconfig:"HISTORY_DAYS" default:"30" validate:"gte=1,lte=366"`
	// HistoryEndLagDays shifts the default window back to days the archives have published.
	HistoryEndLagDays    int  `envconfig:"HISTORY_END_LAG_DAYS" default:"5" validate:"gte=0,lte=30"`
	HistoryAcceptPartial bool `envconfig:"HISTORY_ACCEPT_PARTIAL" default:"false"`
	NearbyParallelism    int  `envconfig:"NEARBY_PARALLELISM" default:"1" validate:"gte=1,lte=16"`
	// SyntheticSeed makes synthetic series reproducible when set.
	SyntheticSeed *int64 `envconfig:"SYNTHETIC_SEED"`

	HistoryCacheTTL  time.Duration `envconfig:"HISTORY_CACHE_TTL" default:"24h" validate:"gte=0"`
	HistoryCachePath string        `envconfig:"HISTORY_CACHE_PATH" default:"data/history-cache.db"`

	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
	FetchInterval time.Duration `envconfig:"FETCH_INTERVAL" default:"15m" validate:"gte=1m"`

	// TrackedCities are refreshed by the scheduler; names must exist in the registry.
	TrackedCities []string `envconfig:"TRACKED_CITIES" default:"Mumbai,Delhi,Bangalore,Chennai,Kolkata"`
	CitiesFile    string   `envconfig:"CITIES_FILE"`

	// In-memory store retention.
	StoreMaxHistory int           `envconfig:"STORE_MAX_HISTORY" default:"96" validate:"gte=0"` // roughly 24h at 15-minute intervals
	StoreMaxAge     time.Duration `envconfig:"STORE_MAX_AGE" default:"24h" validate:"gte=0"`

	Port     string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	AppEnv   string `envconfig:"APP_ENV" default:"production" validate:"oneof=local development production"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	return FromEnv()
}

// FromEnv parses and validates the current environment without touching .env.
func FromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.TrackedCities = trimAll(cfg.TrackedCities)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func trimAll(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
