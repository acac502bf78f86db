package weather

import (
	"context"
	"time"
)

// ProviderReading represents a single provider's normalized current reading
// that can be aggregated into a WeatherSnapshot.
type ProviderReading struct {
	ProviderName string
	Timestamp    time.Time

	TemperatureC float64
	FeelsLikeC   float64
	HumidityPct  float64
	WindSpeedKmh float64
	PressureHpa  float64
	PrecipMm     float64
	Condition    Condition
}

// Provider abstracts a current-weather source (OpenWeatherMap, WeatherAPI, Open-Meteo).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, loc Location) (ProviderReading, error)
}

// HistoricalSource fetches daily station history for a coordinate.
// An empty series with a nil error means "no data here"; failures are
// returned wrapped in ErrSourceUnavailable.
type HistoricalSource interface {
	Name() string
	FetchDaily(ctx context.Context, c Coordinate, r DateRange) (HistoricalSeries, error)
}

// HistoryResolver turns a request into a best-effort tagged series.
type HistoryResolver interface {
	Resolve(ctx context.Context, c Coordinate, r DateRange) (ResolutionResult, error)
	// Policy identifies the configuration results depend on; it is part of the cache key.
	Policy() string
}

// Store is the contract the in-memory snapshot store (and any future persistent store) must satisfy.
type Store interface {
	SaveSnapshot(loc Location, snapshot WeatherSnapshot)
	GetLatest(loc Location) (WeatherSnapshot, error)
	GetRange(loc Location, from, to time.Time) ([]WeatherSnapshot, error)
}

// HistoryCache persists resolution results keyed by HistoryKey.
type HistoryCache interface {
	Get(ctx context.Context, key string) (ResolutionResult, bool, error)
	Put(ctx context.Context, key string, result ResolutionResult) error
}
