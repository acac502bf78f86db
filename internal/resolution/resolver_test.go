package resolution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/india-weather-history/internal/store"
	"github.com/i474232898/india-weather-history/internal/weather"
)

var mumbai = weather.Coordinate{Lat: 19.0760, Lon: 72.8777}

func TestCandidates_FixedOrder(t *testing.T) {
	cands := Candidates(mumbai)
	require.Len(t, cands, 16)

	seen := make(map[string]bool)
	for i, c := range cands {
		assert.Equal(t, i, c.Index)
		assert.NotEqual(t, mumbai.Key(), c.Point.Key())
		assert.False(t, seen[c.Point.Key()], "duplicate candidate %s", c.Point.Key())
		seen[c.Point.Key()] = true
	}

	assert.Equal(t, [2]float64{0.5, 0.5}, [2]float64{cands[0].DLat, cands[0].DLon})
	assert.Equal(t, [2]float64{0.5, -0.5}, [2]float64{cands[1].DLat, cands[1].DLon})
	assert.Equal(t, [2]float64{-0.5, 0.5}, [2]float64{cands[4].DLat, cands[4].DLon})
	assert.Equal(t, [2]float64{-1.0, -1.0}, [2]float64{cands[15].DLat, cands[15].DLon})
}

func TestResolve_ExactHit(t *testing.T) {
	rng := mustRange(t, "2024-05-01", "2024-05-30")
	src := newFakeSource()
	src.set(mumbai, stationSeries(rng, 31))

	res, err := NewResolver(src).Resolve(context.Background(), mumbai, rng)
	require.NoError(t, err)

	assert.Equal(t, weather.TierExact, res.Tier)
	assert.Len(t, res.Series, 30)
	assert.Nil(t, res.NearbyCoordinate)
	assert.Nil(t, res.ClimateZone)
	assert.Equal(t, 1, src.callCount(), "no nearby probes after an exact hit")
	assert.Equal(t, 31.0, *res.Series[0].TempMean)
}

func TestResolve_NearbySingleCandidate(t *testing.T) {
	rng := mustRange(t, "2024-05-01", "2024-05-30")
	src := newFakeSource()
	target := Candidates(mumbai)[5]
	src.set(target.Point, stationSeries(rng, 29))

	res, err := NewResolver(src).Resolve(context.Background(), mumbai, rng)
	require.NoError(t, err)

	assert.Equal(t, weather.TierNearby, res.Tier)
	require.NotNil(t, res.NearbyCoordinate)
	assert.Equal(t, target.Point, *res.NearbyCoordinate)
	assert.Len(t, res.Series, 30)
	assert.Equal(t, 1+6, src.callCount(), "exact plus candidates 0..5")
}

func TestResolve_NearbyFirstInOrderWins(t *testing.T) {
	rng := mustRange(t, "2024-05-01", "2024-05-10")
	cands := Candidates(mumbai)

	for _, parallel := range []int{1, 4, 16} {
		src := newFakeSource()
		src.set(cands[9].Point, stationSeries(rng, 9))
		src.set(cands[3].Point, stationSeries(rng, 3))

		res, err := NewResolver(src, WithNearbyParallelism(parallel)).Resolve(context.Background(), mumbai, rng)
		require.NoError(t, err)

		assert.Equal(t, weather.TierNearby, res.Tier, "parallelism %d", parallel)
		assert.Equal(t, cands[3].Point, *res.NearbyCoordinate, "parallelism %d", parallel)
		assert.Equal(t, 3.0, *res.Series[0].TempMean, "parallelism %d", parallel)
	}
}

func TestResolve_AllEmptySynthesizes(t *testing.T) {
	rng := mustRange(t, "2024-05-01", "2024-05-30")
	src := newFakeSource()

	res, err := NewResolver(src, WithGenerator(NewGenerator(WithSeed(1)))).Resolve(context.Background(), mumbai, rng)
	require.NoError(t, err)

	assert.Equal(t, weather.TierSynthetic, res.Tier)
	assert.Equal(t, 17, src.callCount())
	require.Len(t, res.Series, 30)
	for _, rec := range res.Series {
		assert.True(t, rec.Complete())
	}
	require.NotNil(t, res.ClimateZone)
	assert.Equal(t, weather.ZoneSouthCentral, res.ClimateZone.Zone)
	assert.Nil(t, res.NearbyCoordinate)
}

func TestResolve_SourceUnavailableEscalates(t *testing.T) {
	rng := mustRange(t, "2024-05-01", "2024-05-03")
	src := newFakeSource()
	src.fail[mumbai.Key()] = true
	first := Candidates(mumbai)[0]
	src.set(first.Point, stationSeries(rng, 20))

	res, err := NewResolver(src).Resolve(context.Background(), mumbai, rng)
	require.NoError(t, err)
	assert.Equal(t, weather.TierNearby, res.Tier)
	assert.Equal(t, 2, src.callCount())
}

func TestResolve_EverySourceFailing(t *testing.T) {
	rng := mustRange(t, "2024-05-01", "2024-05-03")
	src := newFakeSource()
	src.fail[mumbai.Key()] = true
	for _, c := range Candidates(mumbai) {
		src.fail[c.Point.Key()] = true
	}

	res, err := NewResolver(src).Resolve(context.Background(), mumbai, rng)
	require.NoError(t, err)
	assert.Equal(t, weather.TierSynthetic, res.Tier)
	assert.Len(t, res.Series, 3)
}

func TestResolve_PartialCoverage(t *testing.T) {
	rng := mustRange(t, "2024-05-01", "2024-05-10")
	partial := stationSeries(rng, 30)[:7] // last three days missing

	t.Run("escalates by default", func(t *testing.T) {
		src := newFakeSource()
		src.set(mumbai, partial)

		res, err := NewResolver(src).Resolve(context.Background(), mumbai, rng)
		require.NoError(t, err)
		assert.Equal(t, weather.TierSynthetic, res.Tier)
		assert.Equal(t, 17, src.callCount())
	})

	t.Run("accepted and padded when enabled", func(t *testing.T) {
		src := newFakeSource()
		src.set(mumbai, partial)

		res, err := NewResolver(src, WithPartialCoverage()).Resolve(context.Background(), mumbai, rng)
		require.NoError(t, err)
		assert.Equal(t, weather.TierExact, res.Tier)
		require.Len(t, res.Series, 10)
		assert.True(t, res.Series[6].HasData())
		assert.False(t, res.Series[7].HasData())
		assert.Equal(t, rng.End, res.Series[9].Date)
	})
}

func TestResolve_NormalizesSourceSeries(t *testing.T) {
	rng := mustRange(t, "2024-05-01", "2024-05-03")
	full := stationSeries(rng, 25)
	extra := weather.DailyRecord{Date: rng.End.AddDate(0, 0, 1), TempMean: weather.Float(99)}
	// Reversed, with a duplicate and an out-of-range day.
	messy := weather.HistoricalSeries{extra, full[2], full[1], full[1], full[0]}

	src := newFakeSource()
	src.set(mumbai, messy)

	res, err := NewResolver(src).Resolve(context.Background(), mumbai, rng)
	require.NoError(t, err)
	require.Len(t, res.Series, 3)
	for i, d := range rng.Dates() {
		assert.Equal(t, d, res.Series[i].Date)
	}
}

func TestResolve_InvalidRangeMakesNoCalls(t *testing.T) {
	src := newFakeSource()
	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	bad := weather.DateRange{Start: start, End: start.AddDate(0, 0, -1)}

	_, err := NewResolver(src).Resolve(context.Background(), mumbai, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, weather.ErrInvalidRange))
	assert.Zero(t, src.callCount())
}

func TestResolve_InvalidCoordinateMakesNoCalls(t *testing.T) {
	src := newFakeSource()
	rng := mustRange(t, "2024-05-01", "2024-05-03")

	_, err := NewResolver(src).Resolve(context.Background(), weather.Coordinate{Lat: 91, Lon: 0}, rng)
	assert.ErrorIs(t, err, weather.ErrInvalidCoordinate)
	assert.Zero(t, src.callCount())
}

func TestResolve_Idempotent(t *testing.T) {
	rng := mustRange(t, "2024-05-01", "2024-05-05")
	src := newFakeSource()
	r := NewResolver(src, WithGenerator(NewGenerator(WithSeed(11))))

	a, err := r.Resolve(context.Background(), mumbai, rng)
	require.NoError(t, err)
	b, err := r.Resolve(context.Background(), mumbai, rng)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResolver_Policy(t *testing.T) {
	src := newFakeSource()
	assert.Equal(t, "fake+full", NewResolver(src).Policy())
	assert.Equal(t, "fake+partial", NewResolver(src, WithPartialCoverage()).Policy())
}

func TestHistory_CancelledRequestIsNotCached(t *testing.T) {
	rng := mustRange(t, "2024-05-01", "2024-05-05")
	src := newFakeSource()
	src.set(mumbai, stationSeries(rng, 30))

	cache := store.NewHistoryMemoryCache(time.Hour)
	svc := weather.NewService(nil, nil, NewResolver(src), cache, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cut, err := svc.History(ctx, mumbai, rng)
	require.NoError(t, err)
	assert.Equal(t, weather.TierSynthetic, cut.Tier)
	assert.Zero(t, cache.ItemCount())

	live, err := svc.History(context.Background(), mumbai, rng)
	require.NoError(t, err)
	assert.Equal(t, weather.TierExact, live.Tier)
	assert.Equal(t, 1, cache.ItemCount())
}
