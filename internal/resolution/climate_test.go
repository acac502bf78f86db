package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/i474232898/india-weather-history/internal/weather"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		want weather.ClimateZone
		base float64
		amp  float64
	}{
		{"leh", 34.1526, weather.ZoneNorthernMountains, 15, 15},
		{"just above 30", 30.0001, weather.ZoneNorthernMountains, 15, 15},
		{"exactly 30 belongs to plains", 30.0, weather.ZoneNorthernPlains, 25, 12},
		{"delhi", 28.7041, weather.ZoneNorthernPlains, 25, 12},
		{"exactly 25", 25.0, weather.ZoneNorthernPlains, 25, 12},
		{"kolkata", 22.5726, weather.ZoneCentral, 28, 8},
		{"exactly 20", 20.0, weather.ZoneCentral, 28, 8},
		{"mumbai", 19.0760, weather.ZoneSouthCentral, 27, 6},
		{"exactly 15 belongs to south-central", 15.0, weather.ZoneSouthCentral, 27, 6},
		{"just below 15", 14.9999, weather.ZoneDeepSouth, 28, 5},
		{"chennai", 13.0827, weather.ZoneDeepSouth, 28, 5},
		{"equator", 0, weather.ZoneDeepSouth, 28, 5},
		{"southern hemisphere uses absolute latitude", -31.5, weather.ZoneNorthernMountains, 15, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.lat)
			assert.Equal(t, tt.want, got.Zone)
			assert.Equal(t, tt.base, got.BaseMeanC)
			assert.Equal(t, tt.amp, got.SeasonalAmplitudeC)
		})
	}
}
