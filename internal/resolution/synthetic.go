package resolution

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/i474232898/india-weather-history/internal/weather"
)

const (
	// seasonalPhaseDay shifts the annual sine so it crosses zero in late March
	// and peaks around mid-June.
	seasonalPhaseDay = 80
	daysPerYear      = 365.0

	noiseStdDevC  = 1.0
	noiseBoundC   = 2.0
	minSpreadC    = 3.0
	maxSpreadC    = 7.0
	minWindKmh    = 5.0
	maxWindKmh    = 25.0
	basePressure  = 1013.0
	pressureSDHpa = 5.0
)

// PrecipitationPolicy sets the daily rain model: on each day it rains with the
// given probability and the amount is exponential with the given mean.
type PrecipitationPolicy struct {
	MonsoonWetProbability float64
	MonsoonMeanMm         float64
	DryWetProbability     float64
	DryMeanMm             float64
	MaxMm                 float64
}

// DefaultPrecipitationPolicy is tuned to an Indian summer monsoon:
// wet three days in four from June to September, rarely otherwise.
func DefaultPrecipitationPolicy() PrecipitationPolicy {
	return PrecipitationPolicy{
		MonsoonWetProbability: 0.75,
		MonsoonMeanMm:         10,
		DryWetProbability:     0.15,
		DryMeanMm:             2,
		MaxMm:                 150,
	}
}

// Generator produces fully populated synthetic daily series from the climate
// zone model. It holds no mutable state and is safe for concurrent use.
type Generator struct {
	seed   *uint64
	precip PrecipitationPolicy
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSeed makes every Generate call reproducible for the same inputs.
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) {
		g.seed = &seed
	}
}

// WithPrecipitationPolicy overrides the default rain model.
func WithPrecipitationPolicy(p PrecipitationPolicy) GeneratorOption {
	return func(g *Generator) {
		g.precip = p
	}
}

// NewGenerator creates a Generator. Without WithSeed each call is seeded randomly.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{precip: DefaultPrecipitationPolicy()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Profile returns the climate zone used for a coordinate.
func (g *Generator) Profile(c weather.Coordinate) weather.ClimateZoneProfile {
	return Classify(c.Lat)
}

// Generate returns one complete record per date in r.
func (g *Generator) Generate(c weather.Coordinate, r weather.DateRange) weather.HistoricalSeries {
	rnd := g.newRand()
	profile := Classify(c.Lat)

	dates := r.Dates()
	series := make(weather.HistoricalSeries, 0, len(dates))
	for _, d := range dates {
		series = append(series, g.day(rnd, profile, d))
	}
	return series
}

func (g *Generator) day(rnd *rand.Rand, profile weather.ClimateZoneProfile, d time.Time) weather.DailyRecord {
	mean := SeasonalMean(profile, d) + clamp(rnd.NormFloat64()*noiseStdDevC, -noiseBoundC, noiseBoundC)
	tmin := mean - uniform(rnd, minSpreadC, maxSpreadC)
	tmax := mean + uniform(rnd, minSpreadC, maxSpreadC)

	return weather.DailyRecord{
		Date:          d,
		TempMean:      weather.Float(round1(mean)),
		TempMin:       weather.Float(round1(tmin)),
		TempMax:       weather.Float(round1(tmax)),
		Precipitation: weather.Float(round1(g.rain(rnd, d.Month()))),
		WindSpeed:     weather.Float(round1(uniform(rnd, minWindKmh, maxWindKmh))),
		Pressure:      weather.Float(round1(basePressure + rnd.NormFloat64()*pressureSDHpa)),
	}
}

func (g *Generator) rain(rnd *rand.Rand, m time.Month) float64 {
	p, mean := g.precip.DryWetProbability, g.precip.DryMeanMm
	if IsMonsoon(m) {
		p, mean = g.precip.MonsoonWetProbability, g.precip.MonsoonMeanMm
	}
	if rnd.Float64() >= p {
		return 0
	}
	return clamp(rnd.ExpFloat64()*mean, 0, g.precip.MaxMm)
}

func (g *Generator) newRand() *rand.Rand {
	if g.seed != nil {
		return rand.New(rand.NewPCG(*g.seed, *g.seed^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// SeasonalMean is the noise-free mean temperature of a zone on date d.
func SeasonalMean(profile weather.ClimateZoneProfile, d time.Time) float64 {
	phase := 2 * math.Pi * float64(d.YearDay()-seasonalPhaseDay) / daysPerYear
	return profile.BaseMeanC + math.Sin(phase)*profile.SeasonalAmplitudeC
}

// IsMonsoon reports whether m is in the June to September monsoon window.
func IsMonsoon(m time.Month) bool {
	return m >= time.June && m <= time.September
}

func uniform(rnd *rand.Rand, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
