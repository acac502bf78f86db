package cities

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/india-weather-history/internal/weather"
)

func TestDefault_LookupIsForgiving(t *testing.T) {
	r := Default()
	assert.Greater(t, r.Len(), 100)

	for _, name := range []string{"Port Blair", "port-blair", "PORTBLAIR", "  port blair "} {
		loc, err := r.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, "Port Blair", loc.Name)
		assert.Equal(t, "portblair", loc.Key)
	}

	mumbai, err := r.Lookup("Mumbai")
	require.NoError(t, err)
	assert.Equal(t, weather.Coordinate{Lat: 19.0760, Lon: 72.8777}, mumbai.Coordinate)
	assert.Equal(t, "Maharashtra", mumbai.State)

	_, err = r.Lookup("Atlantis")
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestList_SortedByName(t *testing.T) {
	list := Default().List()
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].Name, list[i].Name)
	}
}

func TestSearch(t *testing.T) {
	r := Default()

	got := r.Search("hyderbad", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "Hyderabad", got[0].Name)

	assert.Len(t, r.Search("", 5), 5)
	assert.Empty(t, r.Search("zzzzqqq", 5))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "cities.json")
	require.NoError(t, os.WriteFile(good, []byte(`[
		{"name":"Leh","state":"Ladakh","lat":34.1526,"lon":77.5771},
		{"name":"Kavaratti","state":"Lakshadweep","lat":10.5669,"lon":72.6420}
	]`), 0o644))

	r, err := LoadFile(good)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	leh, err := r.Lookup("leh")
	require.NoError(t, err)
	assert.Equal(t, 34.1526, leh.Coordinate.Lat)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"name":"Nowhere","lat":123,"lon":0}]`), 0o644))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

type stubGeocoder struct {
	coord weather.Coordinate
	err   error
	calls int
}

func (s *stubGeocoder) Geocode(context.Context, string) (weather.Coordinate, error) {
	s.calls++
	return s.coord, s.err
}

func TestLocator_FallsBackToGeocoderAndRemembers(t *testing.T) {
	geo := &stubGeocoder{coord: weather.Coordinate{Lat: 34.1526, Lon: 77.5771}}
	loc := NewLocator(Default(), geo, nil)

	got, err := loc.Locate(context.Background(), "Leh")
	require.NoError(t, err)
	assert.Equal(t, "leh", got.Key)
	assert.Equal(t, geo.coord, got.Coordinate)

	_, err = loc.Locate(context.Background(), "LEH")
	require.NoError(t, err)
	assert.Equal(t, 1, geo.calls, "second lookup is served from the registry")

	_, err = loc.Locate(context.Background(), "Mumbai")
	require.NoError(t, err)
	assert.Equal(t, 1, geo.calls)
}

func TestLocator_GeocoderFailureIsNotFound(t *testing.T) {
	geo := &stubGeocoder{err: errors.New("ZERO_RESULTS")}
	loc := NewLocator(Default(), geo, nil)

	_, err := loc.Locate(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrCityNotFound)

	_, err = NewLocator(Default(), nil, nil).Locate(context.Background(), "")
	assert.ErrorIs(t, err, ErrCityNotFound)
}
