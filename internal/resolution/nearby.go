package resolution

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// gridOffsets are the degree offsets probed on each axis, in probe order.
var gridOffsets = [...]float64{0.5, -0.5, 1.0, -1.0}

// Candidate is one grid point probed by the nearby search.
type Candidate struct {
	Index int                `json:"index"`
	DLat  float64            `json:"dLat"`
	DLon  float64            `json:"dLon"`
	Point weather.Coordinate `json:"point"`
}

// Candidates returns the 16 grid points around c in probe order: latitude
// offset in the outer loop, longitude offset in the inner loop. The exact
// point is never included.
func Candidates(c weather.Coordinate) []Candidate {
	out := make([]Candidate, 0, len(gridOffsets)*len(gridOffsets))
	for _, dLat := range gridOffsets {
		for _, dLon := range gridOffsets {
			out = append(out, Candidate{
				Index: len(out),
				DLat:  dLat,
				DLon:  dLon,
				Point: c.Offset(dLat, dLon),
			})
		}
	}
	return out
}

// NearbyMatch is the first acceptable candidate and its series.
type NearbyMatch struct {
	Candidate Candidate
	Series    weather.HistoricalSeries
}

// acceptFunc decides whether a fetched series is usable for a range and
// returns it in its final shape.
type acceptFunc func(s weather.HistoricalSeries, r weather.DateRange) (weather.HistoricalSeries, bool)

// NearbySearch probes the fixed grid around a coordinate.
type NearbySearch struct {
	source      weather.HistoricalSource
	accept      acceptFunc
	parallelism int
	logger      *zap.SugaredLogger
}

// Search returns the lowest-order candidate whose series is acceptable.
// It makes at most 16 source calls and reports false when none succeeds.
func (s *NearbySearch) Search(ctx context.Context, c weather.Coordinate, r weather.DateRange) (NearbyMatch, bool) {
	candidates := Candidates(c)
	if s.parallelism > 1 {
		return s.searchParallel(ctx, candidates, r)
	}

	for _, cand := range candidates {
		if ctx.Err() != nil {
			return NearbyMatch{}, false
		}
		if series, ok := s.probe(ctx, cand, r); ok {
			return NearbyMatch{Candidate: cand, Series: series}, true
		}
	}
	return NearbyMatch{}, false
}

// searchParallel probes with bounded concurrency but still picks the
// candidate earliest in probe order. Candidates ordered after an already
// found match are skipped.
func (s *NearbySearch) searchParallel(ctx context.Context, candidates []Candidate, r weather.DateRange) (NearbyMatch, bool) {
	results := make([]*NearbyMatch, len(candidates))
	var best atomic.Int64
	best.Store(int64(len(candidates)))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for _, cand := range candidates {
		g.Go(func() error {
			if int64(cand.Index) > best.Load() || gCtx.Err() != nil {
				return nil
			}
			series, ok := s.probe(gCtx, cand, r)
			if !ok {
				return nil
			}
			results[cand.Index] = &NearbyMatch{Candidate: cand, Series: series}
			for {
				cur := best.Load()
				if int64(cand.Index) >= cur || best.CompareAndSwap(cur, int64(cand.Index)) {
					break
				}
			}
			return nil
		})
	}

	// Probes never return errors; failures are absorbed per candidate.
	_ = g.Wait()

	for _, m := range results {
		if m != nil {
			return *m, true
		}
	}
	return NearbyMatch{}, false
}

func (s *NearbySearch) probe(ctx context.Context, cand Candidate, r weather.DateRange) (weather.HistoricalSeries, bool) {
	series, err := fetch(ctx, s.source, cand.Point, r, s.accept)
	if err != nil {
		logProbeFailure(s.logger, "nearby", cand.Point, err)
		return nil, false
	}
	return series, true
}

// fetch queries the source once and classifies the outcome: an accepted
// series, ErrNoDataAtPoint, or an ErrSourceUnavailable failure.
func fetch(ctx context.Context, src weather.HistoricalSource, c weather.Coordinate, r weather.DateRange, accept acceptFunc) (weather.HistoricalSeries, error) {
	series, err := src.FetchDaily(ctx, c, r)
	if err != nil {
		if !errors.Is(err, weather.ErrSourceUnavailable) {
			err = errors.Join(weather.ErrSourceUnavailable, err)
		}
		return nil, err
	}
	out, ok := accept(series, r)
	if !ok {
		return nil, weather.ErrNoDataAtPoint
	}
	return out, nil
}

func logProbeFailure(logger *zap.SugaredLogger, tier string, c weather.Coordinate, err error) {
	if errors.Is(err, weather.ErrNoDataAtPoint) {
		logger.Debugw("no station data at point", "tier", tier, "point", c.Key())
		return
	}
	logger.Warnw("historical source unavailable", "tier", tier, "point", c.Key(), "error", err)
}
