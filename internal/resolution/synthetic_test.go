package resolution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/india-weather-history/internal/weather"
)

var delhi = weather.Coordinate{Lat: 28.7041, Lon: 77.1025}

func mustRange(t *testing.T, start, end string) weather.DateRange {
	t.Helper()
	s, err := time.Parse(weather.DateLayout, start)
	require.NoError(t, err)
	e, err := time.Parse(weather.DateLayout, end)
	require.NoError(t, err)
	r, err := weather.NewDateRange(s, e)
	require.NoError(t, err)
	return r
}

func TestGenerate_FullyPopulated(t *testing.T) {
	rng := mustRange(t, "2024-02-25", "2024-03-05") // crosses a leap day
	series := NewGenerator(WithSeed(7)).Generate(delhi, rng)

	require.Len(t, series, rng.Days())
	assert.Equal(t, 10, len(series))
	for i, rec := range series {
		assert.True(t, rec.Complete(), "record %d has missing fields", i)
		assert.Equal(t, rng.Dates()[i], rec.Date)
		assert.Less(t, *rec.TempMin, *rec.TempMean)
		assert.Greater(t, *rec.TempMax, *rec.TempMean)
		assert.GreaterOrEqual(t, *rec.Precipitation, 0.0)
		assert.LessOrEqual(t, *rec.Precipitation, 150.0)
		assert.GreaterOrEqual(t, *rec.WindSpeed, 5.0)
		assert.LessOrEqual(t, *rec.WindSpeed, 25.0)
	}
}

func TestGenerate_SingleDay(t *testing.T) {
	rng := mustRange(t, "2024-07-01", "2024-07-01")
	series := NewGenerator().Generate(delhi, rng)
	require.Len(t, series, 1)
	assert.True(t, series[0].Complete())
}

func TestGenerate_SeededIsReproducible(t *testing.T) {
	rng := mustRange(t, "2024-06-01", "2024-06-30")

	a := NewGenerator(WithSeed(42)).Generate(delhi, rng)
	b := NewGenerator(WithSeed(42)).Generate(delhi, rng)
	c := NewGenerator(WithSeed(43)).Generate(delhi, rng)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerate_Seasonality(t *testing.T) {
	profile := Classify(delhi.Lat)
	require.Equal(t, weather.ZoneNorthernPlains, profile.Zone)

	// Day 171 is a quarter year after the phase origin (peak), day 354 three
	// quarters (trough).
	summer := mustRange(t, "2023-06-20", "2023-06-20")
	winter := mustRange(t, "2023-12-20", "2023-12-20")
	require.Equal(t, 171, summer.Start.YearDay())
	require.Equal(t, 354, winter.Start.YearDay())

	lo := profile.BaseMeanC - profile.SeasonalAmplitudeC - noiseBoundC - 0.05
	hi := profile.BaseMeanC + profile.SeasonalAmplitudeC + noiseBoundC + 0.05

	for seed := uint64(1); seed <= 25; seed++ {
		g := NewGenerator(WithSeed(seed))
		s := *g.Generate(delhi, summer)[0].TempMean
		w := *g.Generate(delhi, winter)[0].TempMean

		assert.Greater(t, s, w+15, "seed %d: summer %.1f winter %.1f", seed, s, w)
		assert.GreaterOrEqual(t, s, lo)
		assert.LessOrEqual(t, s, hi)
		assert.GreaterOrEqual(t, w, lo)
		assert.LessOrEqual(t, w, hi)
	}
}

func TestGenerate_MonsoonBias(t *testing.T) {
	rng := mustRange(t, "2023-01-01", "2023-12-31")

	var monsoonSum, drySum float64
	var monsoonDays, dryDays int
	for seed := uint64(1); seed <= 20; seed++ {
		for _, rec := range NewGenerator(WithSeed(seed)).Generate(delhi, rng) {
			if IsMonsoon(rec.Date.Month()) {
				monsoonSum += *rec.Precipitation
				monsoonDays++
				continue
			}
			drySum += *rec.Precipitation
			dryDays++
		}
	}

	require.Equal(t, 20*122, monsoonDays)
	require.Equal(t, 20*243, dryDays)
	assert.Greater(t, monsoonSum/float64(monsoonDays), drySum/float64(dryDays)*5)
}

func TestGenerate_CustomPrecipitationPolicy(t *testing.T) {
	rng := mustRange(t, "2023-07-01", "2023-07-31")
	dry := PrecipitationPolicy{MaxMm: 150}

	for _, rec := range NewGenerator(WithSeed(3), WithPrecipitationPolicy(dry)).Generate(delhi, rng) {
		assert.Zero(t, *rec.Precipitation)
	}
}

func TestSeasonalMean(t *testing.T) {
	p := weather.ClimateZoneProfile{Zone: weather.ZoneCentral, BaseMeanC: 28, SeasonalAmplitudeC: 8}
	origin := time.Date(2023, time.March, 21, 0, 0, 0, 0, time.UTC) // day 80
	require.Equal(t, 80, origin.YearDay())
	assert.InDelta(t, 28.0, SeasonalMean(p, origin), 1e-9)
}
