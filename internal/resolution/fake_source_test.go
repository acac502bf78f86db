package resolution

import (
	"context"
	"fmt"
	"sync"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// fakeSource serves canned series per coordinate and records every call.
type fakeSource struct {
	mu    sync.Mutex
	data  map[string]weather.HistoricalSeries
	fail  map[string]bool
	calls []weather.Coordinate
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		data: make(map[string]weather.HistoricalSeries),
		fail: make(map[string]bool),
	}
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) FetchDaily(ctx context.Context, c weather.Coordinate, _ weather.DateRange) (weather.HistoricalSeries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", weather.ErrSourceUnavailable, err)
	}
	if f.fail[c.Key()] {
		return nil, fmt.Errorf("%w: connection reset", weather.ErrSourceUnavailable)
	}
	return f.data[c.Key()], nil
}

func (f *fakeSource) set(c weather.Coordinate, s weather.HistoricalSeries) {
	f.data[c.Key()] = s
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// stationSeries builds a complete series for every date of r with a marker
// temperature so tests can tell which point supplied it.
func stationSeries(r weather.DateRange, marker float64) weather.HistoricalSeries {
	var s weather.HistoricalSeries
	for _, d := range r.Dates() {
		s = append(s, weather.DailyRecord{
			Date:          d,
			TempMean:      weather.Float(marker),
			Precipitation: weather.Float(0),
		})
	}
	return s
}
