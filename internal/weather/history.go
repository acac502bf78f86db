package weather

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the calendar-date format used on the wire and in cache keys.
const DateLayout = "2006-01-02"

// TierPolicyVersion identifies the fallback policy that produced a result.
// Bump it whenever tier ordering, grid offsets or synthesis rules change so
// that cached results from an older policy are not served.
const TierPolicyVersion = 1

// MaxRangeDays bounds a single history request.
const MaxRangeDays = 366

// DateRange is an inclusive range of calendar dates (UTC midnight).
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange truncates both ends to calendar dates and rejects start > end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: TruncateDate(start), End: TruncateDate(end)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// LastNDays returns the n-day range ending at now's calendar date, matching
// the "past month" view of the dashboard.
func LastNDays(now time.Time, n int) (DateRange, error) {
	if n <= 0 {
		return DateRange{}, fmt.Errorf("%w: days must be positive, got %d", ErrInvalidRange, n)
	}
	end := TruncateDate(now)
	return NewDateRange(end.AddDate(0, 0, -(n-1)), end)
}

// HistoryWindow is the default "recent history" view: Days dates ending
// EndLagDays before today. Archives publish with a delay, so the newest days
// are usually still empty.
type HistoryWindow struct {
	Days       int
	EndLagDays int
}

// Range returns the window as of now.
func (w HistoryWindow) Range(now time.Time) (DateRange, error) {
	if w.EndLagDays < 0 {
		return DateRange{}, fmt.Errorf("%w: end lag must not be negative, got %d", ErrInvalidRange, w.EndLagDays)
	}
	return LastNDays(now.AddDate(0, 0, -w.EndLagDays), w.Days)
}

// Validate reports ErrInvalidRange when the range is inverted or unset.
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidRange)
	}
	if TruncateDate(r.Start).After(TruncateDate(r.End)) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange,
			r.Start.Format(DateLayout), r.End.Format(DateLayout))
	}
	return nil
}

// Days returns the number of calendar dates in the range.
func (r DateRange) Days() int {
	start, end := TruncateDate(r.Start), TruncateDate(r.End)
	if start.After(end) {
		return 0
	}
	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// Dates lists every date in the range in ascending order.
func (r DateRange) Dates() []time.Time {
	start, end := TruncateDate(r.Start), TruncateDate(r.End)
	var out []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Contains reports whether t's calendar date falls within the range.
func (r DateRange) Contains(t time.Time) bool {
	d := TruncateDate(t)
	return !d.Before(TruncateDate(r.Start)) && !d.After(TruncateDate(r.End))
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

// TruncateDate drops the time of day, keeping the calendar date as seen in t's
// own location, and returns it as UTC midnight.
func TruncateDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DailyRecord holds one day of measurements. A nil field is "not measured",
// which is different from a measured zero.
type DailyRecord struct {
	Date          time.Time `json:"date"`
	TempMean      *float64  `json:"tavg"`
	TempMin       *float64  `json:"tmin"`
	TempMax       *float64  `json:"tmax"`
	Precipitation *float64  `json:"prcp"`
	WindSpeed     *float64  `json:"wspd"` // km/h
	Pressure      *float64  `json:"pres"` // hPa
}

// HasData reports whether at least one field was measured.
func (d DailyRecord) HasData() bool {
	return d.TempMean != nil || d.TempMin != nil || d.TempMax != nil ||
		d.Precipitation != nil || d.WindSpeed != nil || d.Pressure != nil
}

// Complete reports whether every field is present.
func (d DailyRecord) Complete() bool {
	return d.TempMean != nil && d.TempMin != nil && d.TempMax != nil &&
		d.Precipitation != nil && d.WindSpeed != nil && d.Pressure != nil
}

// Float returns a pointer to v, for building DailyRecord literals.
func Float(v float64) *float64 {
	return &v
}

// HistoricalSeries is a date-ascending sequence of daily records.
type HistoricalSeries []DailyRecord

// Empty reports whether the series has no record carrying any data.
func (s HistoricalSeries) Empty() bool {
	for _, rec := range s {
		if rec.HasData() {
			return false
		}
	}
	return true
}

// Normalize returns a copy restricted to rng, sorted by date, with duplicate
// dates collapsed and dates truncated to UTC midnight. Of two records for the
// same date the first one with data wins.
func (s HistoricalSeries) Normalize(rng DateRange) HistoricalSeries {
	seen := make(map[time.Time]int, len(s))
	out := make(HistoricalSeries, 0, len(s))
	for _, rec := range s {
		d := TruncateDate(rec.Date)
		if !rng.Contains(d) {
			continue
		}
		rec.Date = d
		if i, dup := seen[d]; dup {
			if !out[i].HasData() && rec.HasData() {
				out[i] = rec
			}
			continue
		}
		seen[d] = len(out)
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Covers reports whether every date of rng has a record with data.
func (s HistoricalSeries) Covers(rng DateRange) bool {
	have := make(map[time.Time]bool, len(s))
	for _, rec := range s {
		if rec.HasData() {
			have[TruncateDate(rec.Date)] = true
		}
	}
	for _, d := range rng.Dates() {
		if !have[d] {
			return false
		}
	}
	return true
}

// Fill normalizes the series to rng and inserts a field-less record for every
// missing date, so the result has exactly rng.Days() entries.
func (s HistoricalSeries) Fill(rng DateRange) HistoricalSeries {
	byDate := make(map[time.Time]DailyRecord, len(s))
	for _, rec := range s.Normalize(rng) {
		byDate[rec.Date] = rec
	}
	dates := rng.Dates()
	out := make(HistoricalSeries, 0, len(dates))
	for _, d := range dates {
		if rec, ok := byDate[d]; ok {
			out = append(out, rec)
			continue
		}
		out = append(out, DailyRecord{Date: d})
	}
	return out
}

// Tier names the data-resolution strategy that produced a series, in order of trust.
type Tier string

const (
	TierExact     Tier = "exact"
	TierNearby    Tier = "nearby"
	TierSynthetic Tier = "synthetic"
)

// Caveat is the warning shown next to data that did not come from the exact location.
func (t Tier) Caveat() string {
	switch t {
	case TierNearby:
		return "No weather station at this location; showing data from a nearby grid point."
	case TierSynthetic:
		return "No station data available; showing estimated data from a regional climate model."
	default:
		return ""
	}
}

// ClimateZone is a latitude band used for synthesis.
type ClimateZone string

const (
	ZoneNorthernMountains ClimateZone = "northern_mountains"
	ZoneNorthernPlains    ClimateZone = "northern_plains"
	ZoneCentral           ClimateZone = "central"
	ZoneSouthCentral      ClimateZone = "south_central"
	ZoneDeepSouth         ClimateZone = "deep_south"
)

// ClimateZoneProfile is the baseline climate of a zone.
type ClimateZoneProfile struct {
	Zone               ClimateZone `json:"zone"`
	BaseMeanC          float64     `json:"baseMeanC"`
	SeasonalAmplitudeC float64     `json:"seasonalAmplitudeC"`
}

// ResolutionResult is the outcome of resolving a (coordinate, range) request.
// It is built once and not modified afterwards.
type ResolutionResult struct {
	Coordinate Coordinate       `json:"coordinate"`
	Range      DateRange        `json:"range"`
	Tier       Tier             `json:"dataTier"`
	Series     HistoricalSeries `json:"series"`

	// NearbyCoordinate is the grid point that supplied the data when Tier is nearby.
	NearbyCoordinate *Coordinate `json:"nearbyCoordinate,omitempty"`
	// ClimateZone is the profile used when Tier is synthetic.
	ClimateZone *ClimateZoneProfile `json:"climateZone,omitempty"`

	// Source is a human readable provenance line, e.g. "meteostat: nearby station (19.58, 73.38)".
	Source string `json:"source"`
}

// HistoryKey is the cache key for a resolution request. policy names the
// resolver configuration (source and coverage rule) that produced the result.
func HistoryKey(policy string, c Coordinate, r DateRange) string {
	return fmt.Sprintf("v%d|%s|%s|%s|%s", TierPolicyVersion, policy, c.Key(),
		r.Start.Format(DateLayout), r.End.Format(DateLayout))
}
