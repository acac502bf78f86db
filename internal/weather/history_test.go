package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	r, err := NewDateRange(time.Date(2024, 2, 27, 23, 30, 0, 0, ist), date(2024, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 27), r.Start, "the calendar date is kept as seen locally")
	assert.Equal(t, 4, r.Days(), "leap day included")
	assert.Len(t, r.Dates(), 4)
	assert.Equal(t, "2024-02-27..2024-03-01", r.String())

	_, err = NewDateRange(date(2024, 3, 2), date(2024, 3, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	single, err := NewDateRange(date(2024, 3, 1), date(2024, 3, 1).Add(20*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, single.Days())

	assert.ErrorIs(t, DateRange{}.Validate(), ErrInvalidRange)
}

func TestLastNDays(t *testing.T) {
	r, err := LastNDays(time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC), 30)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 10), r.Start)
	assert.Equal(t, date(2024, 3, 10), r.End)
	assert.Equal(t, 30, r.Days())

	_, err = LastNDays(time.Now(), 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestHistoryWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC)
	r, err := HistoryWindow{Days: 30, EndLagDays: 5}.Range(now)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 5), r.End)
	assert.Equal(t, date(2024, 2, 5), r.Start)
	assert.Equal(t, 30, r.Days())

	r, err = HistoryWindow{Days: 7}.Range(now)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 10), r.End)

	_, err = HistoryWindow{Days: 7, EndLagDays: -1}.Range(now)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCoordinate(t *testing.T) {
	assert.NoError(t, Coordinate{Lat: 90, Lon: -180}.Validate())
	assert.ErrorIs(t, Coordinate{Lat: 90.1}.Validate(), ErrInvalidCoordinate)
	assert.ErrorIs(t, Coordinate{Lon: 181}.Validate(), ErrInvalidCoordinate)

	c := Coordinate{Lat: 19.0760, Lon: 72.8777}
	assert.Equal(t, "19.0760,72.8777", c.Key())
	assert.Equal(t, "(19.08, 72.88)", c.String())
	moved := c.Offset(-1, 0.5)
	assert.InDelta(t, 18.0760, moved.Lat, 1e-9)
	assert.InDelta(t, 73.3777, moved.Lon, 1e-9)
}

func TestSeries_NormalizeCoversFill(t *testing.T) {
	rng := DateRange{Start: date(2024, 6, 1), End: date(2024, 6, 3)}
	series := HistoricalSeries{
		{Date: date(2024, 6, 3), TempMean: Float(30)},
		{Date: date(2024, 5, 31), TempMean: Float(29)},
		{Date: date(2024, 6, 1).Add(6 * time.Hour), TempMean: Float(28)},
		{Date: date(2024, 6, 1), TempMean: Float(99)},
	}

	norm := series.Normalize(rng)
	require.Len(t, norm, 2)
	assert.Equal(t, date(2024, 6, 1), norm[0].Date)
	assert.Equal(t, 28.0, *norm[0].TempMean, "first occurrence of a date wins")
	assert.Equal(t, date(2024, 6, 3), norm[1].Date)

	assert.False(t, norm.Covers(rng))
	filled := norm.Fill(rng)
	require.Len(t, filled, 3)
	assert.False(t, filled[1].HasData())
	assert.Equal(t, date(2024, 6, 2), filled[1].Date)
	assert.False(t, filled.Covers(rng), "padding does not count as coverage")

	full := append(norm, DailyRecord{Date: date(2024, 6, 2), Precipitation: Float(0)})
	assert.True(t, full.Covers(rng), "a measured zero is data")
}

func TestSeries_NormalizePrefersRecordWithData(t *testing.T) {
	rng := DateRange{Start: date(2024, 6, 1), End: date(2024, 6, 2)}
	series := HistoricalSeries{
		{Date: date(2024, 6, 1)},
		{Date: date(2024, 6, 2), TempMean: Float(31)},
		{Date: date(2024, 6, 1), TempMean: Float(29)},
		{Date: date(2024, 6, 1), TempMean: Float(99)},
	}

	norm := series.Normalize(rng)
	require.Len(t, norm, 2)
	assert.Equal(t, 29.0, *norm[0].TempMean)
	assert.True(t, norm.Covers(rng))
}

func TestSeries_Empty(t *testing.T) {
	assert.True(t, HistoricalSeries(nil).Empty())
	assert.True(t, HistoricalSeries{{Date: date(2024, 1, 1)}}.Empty())
	assert.False(t, HistoricalSeries{{Date: date(2024, 1, 1), Pressure: Float(1010)}}.Empty())
}

func TestTierCaveat(t *testing.T) {
	assert.Empty(t, TierExact.Caveat())
	assert.NotEmpty(t, TierNearby.Caveat())
	assert.NotEmpty(t, TierSynthetic.Caveat())
	assert.NotEqual(t, TierNearby.Caveat(), TierSynthetic.Caveat())
}

func TestHistoryKey(t *testing.T) {
	c := Coordinate{Lat: 12.9716, Lon: 77.5946}
	r := DateRange{Start: date(2024, 1, 1), End: date(2024, 1, 31)}
	assert.Equal(t, "v1|meteostat+full|12.9716,77.5946|2024-01-01|2024-01-31", HistoryKey("meteostat+full", c, r))
	assert.NotEqual(t, HistoryKey("meteostat+full", c, r), HistoryKey("openmeteo-archive+full", c, r))
	assert.NotEqual(t, HistoryKey("meteostat+full", c, r), HistoryKey("meteostat+partial", c, r))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "portblair", NormalizeName(" Port-Blair "))
	assert.Equal(t, "newdelhi", NormalizeName("new_delhi"))
}
