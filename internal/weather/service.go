package weather

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Service orchestrates current-weather providers, the snapshot store and
// historical resolution with its cache.
type Service struct {
	store     Store
	providers []Provider
	resolver  HistoryResolver
	cache     HistoryCache
	logger    *zap.SugaredLogger
}

// NewService creates a new Service. cache may be nil, in which case every
// history request goes to the resolver.
func NewService(store Store, providers []Provider, resolver HistoryResolver, cache HistoryCache, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{
		store:     store,
		providers: providers,
		resolver:  resolver,
		cache:     cache,
		logger:    logger,
	}
}

// FetchAndStore fetches data from all providers concurrently for the given location,
// aggregates successful readings, and stores a snapshot.
func (s *Service) FetchAndStore(ctx context.Context, loc Location) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		readings []ProviderReading
	)

	s.logger.Debugw("fetching current weather", "location", loc.Key, "providers", len(s.providers))
	if len(s.providers) == 0 {
		return ErrNoProviders
	}

	for _, p := range s.providers {
		wg.Add(1)
		go func(p Provider) {
			defer wg.Done()

			r, err := p.Fetch(ctx, loc)
			if err != nil {
				// Log and continue; we want partial success when possible.
				s.logger.Warnw("provider fetch failed", "provider", p.Name(), "location", loc.Key, "error", err)
				return
			}

			mu.Lock()
			readings = append(readings, r)
			mu.Unlock()
		}(p)
	}

	wg.Wait()

	if len(readings) == 0 {
		// No providers succeeded; do not overwrite last good snapshot.
		s.logger.Warnw("no successful provider readings; keeping last good snapshot", "location", loc.Key)
		return fmt.Errorf("%w: %d providers for %s", ErrProvidersFailed, len(s.providers), loc.Key)
	}

	snapshot := AggregateReadings(loc, readings)
	if snapshot.Timestamp.IsZero() {
		snapshot.Timestamp = time.Now().UTC()
	}
	s.store.SaveSnapshot(loc, snapshot)
	return nil
}

// Current returns the latest stored snapshot, fetching one first when the
// store has nothing for the location yet.
func (s *Service) Current(ctx context.Context, loc Location) (WeatherSnapshot, error) {
	if snap, err := s.store.GetLatest(loc); err == nil {
		return snap, nil
	}
	if err := s.FetchAndStore(ctx, loc); err != nil {
		return WeatherSnapshot{}, err
	}
	return s.store.GetLatest(loc)
}

// GetLatest delegates to the underlying store.
func (s *Service) GetLatest(loc Location) (WeatherSnapshot, error) {
	return s.store.GetLatest(loc)
}

// GetRange delegates to the underlying store.
func (s *Service) GetRange(loc Location, from, to time.Time) ([]WeatherSnapshot, error) {
	return s.store.GetRange(loc, from, to)
}

// History returns the resolved daily series for a coordinate and range,
// serving from the cache when possible. Only validation errors are returned;
// cache failures are logged and bypassed. A result resolved after ctx was
// cancelled is returned but not cached, since the lower tiers may only have
// been reached because the source calls were cut short.
func (s *Service) History(ctx context.Context, c Coordinate, r DateRange) (ResolutionResult, error) {
	if err := c.Validate(); err != nil {
		return ResolutionResult{}, err
	}
	if err := r.Validate(); err != nil {
		return ResolutionResult{}, err
	}

	key := HistoryKey(s.resolver.Policy(), c, r)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.Warnw("history cache read failed", "key", key, "error", err)
		case ok:
			s.logger.Debugw("history cache hit", "key", key, "tier", cached.Tier)
			return cached, nil
		}
	}

	result, err := s.resolver.Resolve(ctx, c, r)
	if err != nil {
		return ResolutionResult{}, err
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		s.logger.Infow("history not cached; request ended early", "key", key, "tier", result.Tier, "error", ctxErr)
		return result, nil
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, key, result); err != nil {
			s.logger.Warnw("history cache write failed", "key", key, "error", err)
		}
	}
	return result, nil
}
