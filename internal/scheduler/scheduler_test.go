package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/india-weather-history/internal/weather"
)

type recordingService struct {
	mu      sync.Mutex
	fetched []string
	ranges  []weather.DateRange
	failAll bool
	// entered and release, when set, hold FetchAndStore open.
	entered chan struct{}
	release chan struct{}
}

func (r *recordingService) FetchAndStore(_ context.Context, loc weather.Location) error {
	if r.entered != nil {
		r.entered <- struct{}{}
		<-r.release
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetched = append(r.fetched, loc.Key)
	if r.failAll {
		return errors.New("all providers failed")
	}
	return nil
}

func (r *recordingService) History(_ context.Context, c weather.Coordinate, rng weather.DateRange) (weather.ResolutionResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ranges = append(r.ranges, rng)
	return weather.ResolutionResult{Coordinate: c, Range: rng, Tier: weather.TierSynthetic}, nil
}

var tracked = []weather.Location{
	{Key: "mumbai", Name: "Mumbai", Coordinate: weather.Coordinate{Lat: 19.0760, Lon: 72.8777}},
	{Key: "shimla", Name: "Shimla", Coordinate: weather.Coordinate{Lat: 31.1048, Lon: 77.1734}},
}

func TestRunOnce_RefreshesAndPrewarms(t *testing.T) {
	svc := &recordingService{}
	s := New(tracked, time.Minute, weather.HistoryWindow{Days: 30, EndLagDays: 5}, svc, nil)
	s.now = func() time.Time { return time.Date(2024, 10, 5, 18, 0, 0, 0, time.UTC) }

	s.RunOnce()

	assert.ElementsMatch(t, []string{"mumbai", "shimla"}, svc.fetched)
	require.Len(t, svc.ranges, 2)
	for _, rng := range svc.ranges {
		assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), rng.Start)
		assert.Equal(t, time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC), rng.End)
	}
}

func TestRunOnce_FetchFailureStillPrewarms(t *testing.T) {
	svc := &recordingService{failAll: true}
	New(tracked, time.Minute, weather.HistoryWindow{Days: 7}, svc, nil).RunOnce()
	assert.Len(t, svc.ranges, 2)
}

func TestRunOnce_PrewarmDisabled(t *testing.T) {
	svc := &recordingService{}
	New(tracked, time.Minute, weather.HistoryWindow{}, svc, nil).RunOnce()
	assert.Len(t, svc.fetched, 2)
	assert.Empty(t, svc.ranges)
}

func TestStart_NoLocations(t *testing.T) {
	s := New(nil, time.Minute, weather.HistoryWindow{Days: 30}, &recordingService{}, nil)
	require.NoError(t, s.Start())
	s.Stop()
}

func TestStart_SchedulesOneJob(t *testing.T) {
	s := New(tracked, time.Hour, weather.HistoryWindow{}, &recordingService{}, nil)
	require.NoError(t, s.Start())
	defer s.Stop()
	assert.Equal(t, 1, s.scheduler.Len())
}

func TestRunOnce_SkipsWhileRunning(t *testing.T) {
	svc := &recordingService{
		entered: make(chan struct{}, len(tracked)),
		release: make(chan struct{}),
	}
	s := New(tracked, time.Minute, weather.HistoryWindow{}, svc, nil)

	done := make(chan struct{})
	go func() {
		s.RunOnce()
		close(done)
	}()
	for range tracked {
		<-svc.entered
	}

	// The overlapping call returns without touching the service.
	s.RunOnce()

	close(svc.release)
	<-done
	assert.Len(t, svc.fetched, len(tracked))
}
