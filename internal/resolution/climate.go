// Package resolution turns a (coordinate, date range) request into a daily
// weather series that always exists: station data at the exact point, then a
// fixed grid of nearby points, then a climate-zone synthetic series.
package resolution

import (
	"math"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// Classify maps a latitude to its climate zone profile. Bands are checked on
// |lat| from north to south and the first match wins; each named range owns
// both of its ends, so 30.0 is northern plains and 15.0 is south-central.
func Classify(lat float64) weather.ClimateZoneProfile {
	abs := math.Abs(lat)
	switch {
	case abs > 30:
		return weather.ClimateZoneProfile{Zone: weather.ZoneNorthernMountains, BaseMeanC: 15, SeasonalAmplitudeC: 15}
	case abs >= 25:
		return weather.ClimateZoneProfile{Zone: weather.ZoneNorthernPlains, BaseMeanC: 25, SeasonalAmplitudeC: 12}
	case abs >= 20:
		return weather.ClimateZoneProfile{Zone: weather.ZoneCentral, BaseMeanC: 28, SeasonalAmplitudeC: 8}
	case abs >= 15:
		return weather.ClimateZoneProfile{Zone: weather.ZoneSouthCentral, BaseMeanC: 27, SeasonalAmplitudeC: 6}
	default:
		return weather.ClimateZoneProfile{Zone: weather.ZoneDeepSouth, BaseMeanC: 28, SeasonalAmplitudeC: 5}
	}
}
