package cities

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kelvins/geocoder"
	"go.uber.org/zap"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// Geocoder resolves a free-form city name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (weather.Coordinate, error)
}

// GoogleGeocoder uses the Google Geocoding API, restricted to India.
type GoogleGeocoder struct {
	mu sync.Mutex
}

// NewGoogleGeocoder configures the geocoder package with apiKey.
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	geocoder.ApiKey = apiKey
	return &GoogleGeocoder{}
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, name string) (weather.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return weather.Coordinate{}, err
	}

	// The geocoder package keeps request state in globals.
	g.mu.Lock()
	defer g.mu.Unlock()

	loc, err := geocoder.Geocoding(geocoder.Address{
		City:    name,
		Country: "India",
	})
	if err != nil {
		return weather.Coordinate{}, fmt.Errorf("geocoding %q: %w", name, err)
	}

	c := weather.Coordinate{Lat: loc.Latitude, Lon: loc.Longitude}
	if err := c.Validate(); err != nil {
		return weather.Coordinate{}, err
	}
	return c, nil
}

// Locator resolves names through the registry first and, when a geocoder is
// configured, falls back to it, remembering the answer.
type Locator struct {
	registry *Registry
	geocoder Geocoder
	logger   *zap.SugaredLogger
}

// NewLocator creates a Locator. geo may be nil to disable geocoding.
func NewLocator(registry *Registry, geo Geocoder, logger *zap.SugaredLogger) *Locator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Locator{registry: registry, geocoder: geo, logger: logger}
}

// Locate returns the location for a city name.
func (l *Locator) Locate(ctx context.Context, name string) (weather.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return weather.Location{}, fmt.Errorf("%w: empty name", ErrCityNotFound)
	}

	loc, err := l.registry.Lookup(name)
	if err == nil || l.geocoder == nil || !errors.Is(err, ErrCityNotFound) {
		return loc, err
	}

	c, geoErr := l.geocoder.Geocode(ctx, name)
	if geoErr != nil {
		l.logger.Debugw("geocoding fallback failed", "city", name, "error", geoErr)
		return weather.Location{}, err
	}

	loc = weather.Location{
		Key:        weather.NormalizeName(name),
		Name:       name,
		Coordinate: c,
	}
	l.registry.Add(loc)
	l.logger.Infow("city geocoded", "city", name, "coordinate", c.String())
	return loc, nil
}

// Registry exposes the underlying registry.
func (l *Locator) Registry() *Registry {
	return l.registry
}
