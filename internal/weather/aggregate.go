package weather

import (
	"math"
	"time"
)

// AggregateReadings combines multiple provider readings into a single WeatherSnapshot.
// Numeric fields are averaged; conditions are selected by majority (or first if tied).
func AggregateReadings(loc Location, readings []ProviderReading) WeatherSnapshot {
	if len(readings) == 0 {
		return WeatherSnapshot{
			Location:  loc,
			Timestamp: time.Now().UTC(),
			Condition: ConditionUnknown,
		}
	}

	var (
		sumTemp     float64
		sumFeels    float64
		sumHumidity float64
		sumWind     float64
		sumPressure float64
		sumPrecip   float64
	)

	conditionCounts := make(map[Condition]int)
	conditionOrder := make([]Condition, 0, len(readings))
	providers := make([]ProviderContribution, 0, len(readings))
	var newestTS time.Time

	for _, r := range readings {
		sumTemp += r.TemperatureC
		feels := r.FeelsLikeC
		if feels == 0 {
			feels = r.TemperatureC
		}
		sumFeels += feels
		sumHumidity += r.HumidityPct
		sumWind += r.WindSpeedKmh
		sumPressure += r.PressureHpa
		sumPrecip += r.PrecipMm

		if conditionCounts[r.Condition] == 0 {
			conditionOrder = append(conditionOrder, r.Condition)
		}
		conditionCounts[r.Condition]++

		if r.Timestamp.After(newestTS) {
			newestTS = r.Timestamp
		}

		providers = append(providers, ProviderContribution{
			ProviderName: r.ProviderName,
			Timestamp:    r.Timestamp,
		})
	}

	n := float64(len(readings))

	// Pick majority condition; ties go to the first seen.
	bestCond := ConditionUnknown
	bestCount := 0
	for _, cond := range conditionOrder {
		if count := conditionCounts[cond]; count > bestCount {
			bestCount = count
			bestCond = cond
		}
	}

	if newestTS.IsZero() {
		newestTS = time.Now().UTC()
	}

	return WeatherSnapshot{
		Location:     loc,
		Timestamp:    newestTS,
		Temperature:  round1(sumTemp / n),
		FeelsLike:    round1(sumFeels / n),
		Humidity:     round1(sumHumidity / n),
		WindSpeedKmh: round1(sumWind / n),
		Pressure:     round1(sumPressure / n),
		PrecipMM:     round1(sumPrecip / n),
		Condition:    bestCond,
		Providers:    providers,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
