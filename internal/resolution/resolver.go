package resolution

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// state is a step of the resolution state machine.
type state int

const (
	stateTryExact state = iota
	stateTryNearby
	stateSynthesize
	stateDone
)

// Resolver is the tiered fallback controller. It never fails for lack of
// data: requests that pass validation always get a tagged series.
type Resolver struct {
	source         weather.HistoricalSource
	generator      *Generator
	nearby         *NearbySearch
	acceptPartial  bool
	logger         *zap.SugaredLogger
	nearbyParallel int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithGenerator replaces the default synthetic generator.
func WithGenerator(g *Generator) Option {
	return func(r *Resolver) {
		r.generator = g
	}
}

// WithPartialCoverage accepts a real-data tier that covers only some dates
// and pads the rest with empty records, instead of escalating.
func WithPartialCoverage() Option {
	return func(r *Resolver) {
		r.acceptPartial = true
	}
}

// WithNearbyParallelism probes up to n grid points at once.
func WithNearbyParallelism(n int) Option {
	return func(r *Resolver) {
		r.nearbyParallel = n
	}
}

// WithLogger sets the logger used for tier transitions.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver builds a Resolver on top of a historical source.
func NewResolver(source weather.HistoricalSource, opts ...Option) *Resolver {
	r := &Resolver{
		source:         source,
		logger:         zap.NewNop().Sugar(),
		nearbyParallel: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.generator == nil {
		r.generator = NewGenerator()
	}
	r.nearby = &NearbySearch{
		source:      source,
		accept:      r.accept,
		parallelism: r.nearbyParallel,
		logger:      r.logger,
	}
	return r
}

// Policy names the source and coverage rule, e.g. "meteostat+full".
func (r *Resolver) Policy() string {
	coverage := "full"
	if r.acceptPartial {
		coverage = "partial"
	}
	return r.source.Name() + "+" + coverage
}

// Resolve runs TryExact -> TryNearby -> Synthesize. It returns an error only
// for an invalid coordinate or range, and does so before any source call.
func (r *Resolver) Resolve(ctx context.Context, c weather.Coordinate, rng weather.DateRange) (weather.ResolutionResult, error) {
	if err := c.Validate(); err != nil {
		return weather.ResolutionResult{}, err
	}
	if err := rng.Validate(); err != nil {
		return weather.ResolutionResult{}, err
	}
	rng = weather.DateRange{Start: weather.TruncateDate(rng.Start), End: weather.TruncateDate(rng.End)}

	result := weather.ResolutionResult{Coordinate: c, Range: rng}
	src := r.source.Name()

	for st := stateTryExact; st != stateDone; {
		switch st {
		case stateTryExact:
			series, err := fetch(ctx, r.source, c, rng, r.accept)
			if err != nil {
				logProbeFailure(r.logger, string(weather.TierExact), c, err)
				st = stateTryNearby
				continue
			}
			result.Tier = weather.TierExact
			result.Series = series
			result.Source = fmt.Sprintf("%s: %s", src, c)
			st = stateDone

		case stateTryNearby:
			match, ok := r.nearby.Search(ctx, c, rng)
			if !ok {
				st = stateSynthesize
				continue
			}
			point := match.Candidate.Point
			result.Tier = weather.TierNearby
			result.Series = match.Series
			result.NearbyCoordinate = &point
			result.Source = fmt.Sprintf("%s: nearby station %s", src, point)
			st = stateDone

		case stateSynthesize:
			profile := r.generator.Profile(c)
			result.Tier = weather.TierSynthetic
			result.Series = r.generator.Generate(c, rng)
			result.ClimateZone = &profile
			result.Source = fmt.Sprintf("synthetic: %s climate estimate", profile.Zone)
			st = stateDone
		}
	}

	r.logger.Infow("history resolved",
		"point", c.Key(),
		"range", rng.String(),
		"tier", result.Tier,
		"days", len(result.Series),
	)
	return result, nil
}

func (r *Resolver) accept(s weather.HistoricalSeries, rng weather.DateRange) (weather.HistoricalSeries, bool) {
	normalized := s.Normalize(rng)
	if r.acceptPartial {
		if normalized.Empty() {
			return nil, false
		}
		return normalized.Fill(rng), true
	}
	if !normalized.Covers(rng) {
		return nil, false
	}
	return normalized, true
}
