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

const meteostatHost = "meteostat.p.rapidapi.com"

// MeteostatSource implements weather.HistoricalSource on the Meteostat
// point/daily API. Meteostat interpolates from stations around the point and
// returns no rows when none is close enough.
type MeteostatSource struct {
	endpoint
	apiKey string
}

func NewMeteostatSource(client *http.Client, apiKey string, opts ...Option) *MeteostatSource {
	return &MeteostatSource{
		endpoint: newEndpoint("meteostat", "https://"+meteostatHost+"/point/daily", client, opts),
		apiKey:   apiKey,
	}
}

func (p *MeteostatSource) Name() string {
	return p.name
}

// meteostatDay mirrors one element of the "data" array; null fields stay nil.
type meteostatDay struct {
	Date string   `json:"date"`
	Tavg *float64 `json:"tavg"`
	Tmin *float64 `json:"tmin"`
	Tmax *float64 `json:"tmax"`
	Prcp *float64 `json:"prcp"`
	Wspd *float64 `json:"wspd"`
	Pres *float64 `json:"pres"`
}

func (p *MeteostatSource) FetchDaily(ctx context.Context, c weather.Coordinate, r weather.DateRange) (weather.HistoricalSeries, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: meteostat %v", weather.ErrSourceUnavailable, errMissingAPIKey)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", fmt.Sprintf("%.4f", c.Lat))
		values.Set("lon", fmt.Sprintf("%.4f", c.Lon))
		values.Set("start", r.Start.Format(weather.DateLayout))
		values.Set("end", r.End.Format(weather.DateLayout))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("x-rapidapi-key", p.apiKey)
		req.Header.Set("x-rapidapi-host", meteostatHost)
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: meteostat: %v", weather.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Data []meteostatDay `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: meteostat decode: %v", weather.ErrSourceUnavailable, err)
	}

	series := make(weather.HistoricalSeries, 0, len(payload.Data))
	for _, day := range payload.Data {
		d, err := parseDay(day.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: meteostat date %q: %v", weather.ErrSourceUnavailable, day.Date, err)
		}
		series = append(series, weather.DailyRecord{
			Date:          d,
			TempMean:      day.Tavg,
			TempMin:       day.Tmin,
			TempMax:       day.Tmax,
			Precipitation: day.Prcp,
			WindSpeed:     day.Wspd,
			Pressure:      day.Pres,
		})
	}
	return series, nil
}

// parseDay accepts "2006-01-02" and the "2006-01-02 00:00:00" form some
// Meteostat endpoints emit.
func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse(weather.DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}
