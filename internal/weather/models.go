package weather

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Offset returns a new coordinate shifted by the given number of degrees.
func (c Coordinate) Offset(dLat, dLon float64) Coordinate {
	return Coordinate{Lat: c.Lat + dLat, Lon: c.Lon + dLon}
}

// Key returns a canonical string form rounded to four decimals (~11m).
func (c Coordinate) Key() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}

// Validate rejects coordinates outside the WGS84 domain.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinate, c.Lat)
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinate, c.Lon)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", c.Lat, c.Lon)
}

// Location represents a named place for which we track weather.
type Location struct {
	Key        string     `json:"key"`
	Name       string     `json:"name"`
	State      string     `json:"state,omitempty"`
	Coordinate Coordinate `json:"coordinate"`
}

// NormalizeName folds a city name into its lookup key: lowercase, without
// spaces or hyphens ("Port Blair" and "port-blair" both become "portblair").
func NormalizeName(name string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return r.Replace(strings.ToLower(strings.TrimSpace(name)))
}

// WeatherSnapshot is the normalized, aggregated current weather at a point in time.
type WeatherSnapshot struct {
	Location     Location  `json:"location"`
	Timestamp    time.Time `json:"timestamp"` // always UTC
	Temperature  float64   `json:"temperatureC"`
	FeelsLike    float64   `json:"feelsLikeC"`
	Humidity     float64   `json:"humidityPercent"`
	WindSpeedKmh float64   `json:"windSpeedKmh"`
	Pressure     float64   `json:"pressureHpa"`
	PrecipMM     float64   `json:"precipMm"`
	Condition    Condition `json:"condition"`

	// Providers contributing to this snapshot.
	Providers []ProviderContribution `json:"providers,omitempty"`
}

// ProviderContribution describes data coming from a single provider used in aggregation.
type ProviderContribution struct {
	ProviderName string    `json:"provider"`
	Timestamp    time.Time `json:"timestamp"`
}
