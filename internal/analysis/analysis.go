// Package analysis derives summary statistics and day-over-day changes from
// a historical series.
package analysis

import (
	"math"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// RainyDayThresholdMM is the precipitation above which a day counts as rainy.
const RainyDayThresholdMM = 0.1

// Summary aggregates a series. Pointer fields are nil when no day carried
// the underlying measurement.
type Summary struct {
	Days          int      `json:"days"`
	DaysWithData  int      `json:"daysWithData"`
	MeanTempC     *float64 `json:"meanTempC"`
	MaxTempC      *float64 `json:"maxTempC"`
	MinTempC      *float64 `json:"minTempC"`
	TempRangeC    *float64 `json:"tempRangeC"`
	TotalPrecipMM *float64 `json:"totalPrecipMm"`
	RainyDays     int      `json:"rainyDays"`
	MeanWindKmh   *float64 `json:"meanWindKmh"`
	MaxWindKmh    *float64 `json:"maxWindKmh"`
	MeanPressure  *float64 `json:"meanPressureHpa"`
}

// accumulator tracks sum, min and max of the values it has seen.
type accumulator struct {
	n             int
	sum, min, max float64
}

func (a *accumulator) add(v *float64) {
	if v == nil {
		return
	}
	if a.n == 0 {
		a.min, a.max = *v, *v
	}
	a.n++
	a.sum += *v
	a.min = math.Min(a.min, *v)
	a.max = math.Max(a.max, *v)
}

func (a *accumulator) mean() *float64 {
	if a.n == 0 {
		return nil
	}
	return ptr(round2(a.sum / float64(a.n)))
}

func (a *accumulator) total() *float64 {
	if a.n == 0 {
		return nil
	}
	return ptr(round2(a.sum))
}

func (a *accumulator) minimum() *float64 {
	if a.n == 0 {
		return nil
	}
	return ptr(a.min)
}

func (a *accumulator) maximum() *float64 {
	if a.n == 0 {
		return nil
	}
	return ptr(a.max)
}

// Summarize computes statistics over every record of the series. Daily means
// drive the temperature mean; the extremes use tmax/tmin when present and fall
// back to the mean otherwise.
func Summarize(series weather.HistoricalSeries) Summary {
	var temp, hi, lo, precip, wind, pres accumulator
	s := Summary{Days: len(series)}

	for _, rec := range series {
		if rec.HasData() {
			s.DaysWithData++
		}
		temp.add(rec.TempMean)
		hi.add(firstNonNil(rec.TempMax, rec.TempMean))
		lo.add(firstNonNil(rec.TempMin, rec.TempMean))
		precip.add(rec.Precipitation)
		wind.add(rec.WindSpeed)
		pres.add(rec.Pressure)

		if rec.Precipitation != nil && *rec.Precipitation > RainyDayThresholdMM {
			s.RainyDays++
		}
	}

	s.MeanTempC = temp.mean()
	s.MaxTempC = hi.maximum()
	s.MinTempC = lo.minimum()
	if s.MaxTempC != nil && s.MinTempC != nil {
		s.TempRangeC = ptr(round2(*s.MaxTempC - *s.MinTempC))
	}
	s.TotalPrecipMM = precip.total()
	s.MeanWindKmh = wind.mean()
	s.MaxWindKmh = wind.maximum()
	s.MeanPressure = pres.mean()
	return s
}

func firstNonNil(vs ...*float64) *float64 {
	for _, v := range vs {
		if v != nil {
			return v
		}
	}
	return nil
}

func ptr(v float64) *float64 {
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
