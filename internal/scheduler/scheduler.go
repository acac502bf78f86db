package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// Service is the subset of weather.Service the scheduler drives.
type Service interface {
	FetchAndStore(ctx context.Context, loc weather.Location) error
	History(ctx context.Context, c weather.Coordinate, r weather.DateRange) (weather.ResolutionResult, error)
}

// Scheduler periodically refreshes current weather and prewarms the history
// cache for the tracked cities.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Service
	locations []weather.Location
	interval  time.Duration
	window    weather.HistoryWindow
	logger    *zap.SugaredLogger
	now       func() time.Time
	running   atomic.Bool
}

// New creates a new Scheduler. window.Days <= 0 disables history prewarming.
func New(locations []weather.Location, interval time.Duration, window weather.HistoryWindow, service Service, logger *zap.SugaredLogger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		locations: locations,
		interval:  interval,
		window:    window,
		logger:    logger,
		now:       time.Now,
	}
}

// Start schedules the periodic job and starts the underlying scheduler. The
// first run happens immediately.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		s.logger.Infow("scheduler: no locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	// A prewarm can outlast a short interval; runs must not pile up.
	_, err := s.scheduler.Every(minutes).Minutes().SingletonMode().Do(s.RunOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce refreshes every tracked location concurrently and waits for all of
// them. A call made while another run is in progress returns immediately.
func (s *Scheduler) RunOnce() {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warnw("scheduler: previous refresh still running; skipping")
		return
	}
	defer s.running.Store(false)

	s.logger.Infow("scheduler: running refresh job", "locations", len(s.locations))

	var wg sync.WaitGroup
	for _, loc := range s.locations {
		wg.Add(1)
		go func(loc weather.Location) {
			defer wg.Done()
			s.refresh(loc)
		}(loc)
	}
	wg.Wait()

	s.logger.Infow("scheduler: completed refresh job")
}

func (s *Scheduler) refresh(loc weather.Location) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.service.FetchAndStore(ctx, loc); err != nil {
		s.logger.Warnw("scheduler: current weather fetch failed", "location", loc.Key, "error", err)
	}

	if s.window.Days <= 0 {
		return
	}
	rng, err := s.window.Range(s.now())
	if err != nil {
		s.logger.Warnw("scheduler: invalid history window", "days", s.window.Days, "lag", s.window.EndLagDays, "error", err)
		return
	}

	// Resolution may probe many grid points; give it its own budget.
	hctx, hcancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer hcancel()

	res, err := s.service.History(hctx, loc.Coordinate, rng)
	if err != nil {
		s.logger.Warnw("scheduler: history prewarm failed", "location", loc.Key, "error", err)
		return
	}
	s.logger.Debugw("scheduler: history prewarmed", "location", loc.Key, "tier", res.Tier, "range", rng.String())
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
