package analysis

import (
	"time"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// Trend classifies a day-over-day change.
type Trend string

const (
	TrendIncrease Trend = "increase"
	TrendDecrease Trend = "decrease"
	TrendStable   Trend = "stable"
)

// Default tolerances inside which a change counts as stable.
const (
	DefaultTolerance         = 0.5
	DefaultPressureTolerance = 2.0
)

// Classify returns the trend of delta given a symmetric tolerance.
func Classify(delta, tolerance float64) Trend {
	switch {
	case delta > tolerance:
		return TrendIncrease
	case delta < -tolerance:
		return TrendDecrease
	default:
		return TrendStable
	}
}

// FieldChange is the change of one measurement against the previous day.
// Delta is nil when either day lacks the measurement, in which case the
// trend is stable.
type FieldChange struct {
	Delta *float64 `json:"delta"`
	Trend Trend    `json:"trend"`
}

// DailyChange holds the day-over-day changes for one date.
type DailyChange struct {
	Date          time.Time   `json:"date"`
	Temperature   FieldChange `json:"temperature"`
	Precipitation FieldChange `json:"precipitation"`
	WindSpeed     FieldChange `json:"windSpeed"`
	Pressure      FieldChange `json:"pressure"`
}

// DailyChanges compares each record with the one before it. The first day has
// nothing to compare against and is reported stable on every field.
func DailyChanges(series weather.HistoricalSeries) []DailyChange {
	out := make([]DailyChange, 0, len(series))
	for i, rec := range series {
		dc := DailyChange{Date: rec.Date}
		if i == 0 {
			dc.Temperature = FieldChange{Trend: TrendStable}
			dc.Precipitation = FieldChange{Trend: TrendStable}
			dc.WindSpeed = FieldChange{Trend: TrendStable}
			dc.Pressure = FieldChange{Trend: TrendStable}
			out = append(out, dc)
			continue
		}
		prev := series[i-1]
		dc.Temperature = change(prev.TempMean, rec.TempMean, DefaultTolerance)
		dc.Precipitation = change(prev.Precipitation, rec.Precipitation, DefaultTolerance)
		dc.WindSpeed = change(prev.WindSpeed, rec.WindSpeed, DefaultTolerance)
		dc.Pressure = change(prev.Pressure, rec.Pressure, DefaultPressureTolerance)
		out = append(out, dc)
	}
	return out
}

func change(prev, cur *float64, tolerance float64) FieldChange {
	if prev == nil || cur == nil {
		return FieldChange{Trend: TrendStable}
	}
	d := round2(*cur - *prev)
	return FieldChange{Delta: &d, Trend: Classify(d, tolerance)}
}
