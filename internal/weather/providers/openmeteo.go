package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
// It needs no API key, so it is always available.
type OpenMeteoProvider struct {
	endpoint
}

func NewOpenMeteoProvider(client *http.Client, opts ...Option) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		endpoint: newEndpoint("openmeteo", "https://api.open-meteo.com/v1/forecast", client, opts),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, loc weather.Location) (weather.ProviderReading, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", loc.Coordinate.Lat))
		values.Set("longitude", fmt.Sprintf("%f", loc.Coordinate.Lon))
		values.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,precipitation,weather_code,surface_pressure,wind_speed_10m")
		values.Set("timezone", "GMT")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.ProviderReading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Current struct {
			Time                string  `json:"time"`
			Temperature         float64 `json:"temperature_2m"`
			ApparentTemperature float64 `json:"apparent_temperature"`
			Humidity            float64 `json:"relative_humidity_2m"`
			Precipitation       float64 `json:"precipitation"`
			WeatherCode         int     `json:"weather_code"`
			Pressure            float64 `json:"surface_pressure"`
			WindSpeed           float64 `json:"wind_speed_10m"` // km/h by default
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.ProviderReading{}, err
	}

	ts, err := time.Parse("2006-01-02T15:04", payload.Current.Time)
	if err != nil {
		ts = time.Now().UTC()
	}

	return weather.ProviderReading{
		ProviderName: p.name,
		Timestamp:    ts.UTC(),
		TemperatureC: payload.Current.Temperature,
		FeelsLikeC:   payload.Current.ApparentTemperature,
		HumidityPct:  payload.Current.Humidity,
		WindSpeedKmh: payload.Current.WindSpeed,
		PressureHpa:  payload.Current.Pressure,
		PrecipMm:     payload.Current.Precipitation,
		Condition:    mapOpenMeteoCondition(payload.Current.WeatherCode),
	}, nil
}

func mapOpenMeteoCondition(code int) weather.Condition {
	// Mapping based on Open-Meteo weather codes (simplified).
	switch {
	case code == 0:
		return weather.ConditionClear
	case code >= 1 && code <= 3:
		return weather.ConditionCloudy
	case code == 45 || code == 48:
		return weather.ConditionMist
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return weather.ConditionRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return weather.ConditionSnow
	case code >= 95:
		return weather.ConditionStorm
	default:
		return weather.ConditionUnknown
	}
}

// OpenMeteoArchiveSource implements weather.HistoricalSource on the
// Open-Meteo reanalysis archive. Days not yet published come back as nulls.
type OpenMeteoArchiveSource struct {
	endpoint
}

func NewOpenMeteoArchiveSource(client *http.Client, opts ...Option) *OpenMeteoArchiveSource {
	return &OpenMeteoArchiveSource{
		endpoint: newEndpoint("openmeteo-archive", "https://archive-api.open-meteo.com/v1/archive", client, opts),
	}
}

func (p *OpenMeteoArchiveSource) Name() string {
	return p.name
}

func (p *OpenMeteoArchiveSource) FetchDaily(ctx context.Context, c weather.Coordinate, r weather.DateRange) (weather.HistoricalSeries, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%.4f", c.Lat))
		values.Set("longitude", fmt.Sprintf("%.4f", c.Lon))
		values.Set("start_date", r.Start.Format(weather.DateLayout))
		values.Set("end_date", r.End.Format(weather.DateLayout))
		values.Set("daily", "temperature_2m_mean,temperature_2m_min,temperature_2m_max,precipitation_sum,wind_speed_10m_max,pressure_msl_mean")
		values.Set("timezone", "GMT")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: openmeteo archive: %v", weather.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Daily struct {
			Time     []string   `json:"time"`
			TempMean []*float64 `json:"temperature_2m_mean"`
			TempMin  []*float64 `json:"temperature_2m_min"`
			TempMax  []*float64 `json:"temperature_2m_max"`
			Precip   []*float64 `json:"precipitation_sum"`
			Wind     []*float64 `json:"wind_speed_10m_max"`
			Pressure []*float64 `json:"pressure_msl_mean"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: openmeteo archive decode: %v", weather.ErrSourceUnavailable, err)
	}

	d := payload.Daily
	series := make(weather.HistoricalSeries, 0, len(d.Time))
	for i, day := range d.Time {
		date, err := time.Parse(weather.DateLayout, day)
		if err != nil {
			return nil, fmt.Errorf("%w: openmeteo archive date %q: %v", weather.ErrSourceUnavailable, day, err)
		}
		series = append(series, weather.DailyRecord{
			Date:          date,
			TempMean:      at(d.TempMean, i),
			TempMin:       at(d.TempMin, i),
			TempMax:       at(d.TempMax, i),
			Precipitation: at(d.Precip, i),
			WindSpeed:     at(d.Wind, i),
			Pressure:      at(d.Pressure, i),
		})
	}
	return series, nil
}

// at tolerates arrays shorter than the time axis.
func at(values []*float64, i int) *float64 {
	if i < len(values) {
		return values[i]
	}
	return nil
}
