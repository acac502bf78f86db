// Package cities maps Indian city names to coordinates, using a built-in
// table that can be replaced from a JSON file and extended by geocoding.
package cities

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sahilm/fuzzy"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// ErrCityNotFound is returned when a name resolves to no known city.
var ErrCityNotFound = errors.New("city not found")

var validate = validator.New()

// City is a registry entry as stored in the city file.
type City struct {
	Name  string  `json:"name" validate:"required"`
	State string  `json:"state"`
	Lat   float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon   float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// Location converts the entry into a weather.Location keyed by its normalized name.
func (c City) Location() weather.Location {
	return weather.Location{
		Key:        weather.NormalizeName(c.Name),
		Name:       c.Name,
		State:      c.State,
		Coordinate: weather.Coordinate{Lat: c.Lat, Lon: c.Lon},
	}
}

// Registry is a concurrency-safe name to location index.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]weather.Location
}

// NewRegistry builds a registry from entries. Later duplicates of the same
// normalized name are ignored.
func NewRegistry(entries []City) (*Registry, error) {
	r := &Registry{byName: make(map[string]weather.Location, len(entries))}
	for i, c := range entries {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("city entry %d (%q): %w", i, c.Name, err)
		}
		loc := c.Location()
		if _, dup := r.byName[loc.Key]; dup {
			continue
		}
		r.byName[loc.Key] = loc
	}
	return r, nil
}

// Default returns the built-in registry of Indian cities.
func Default() *Registry {
	r, err := NewRegistry(builtin)
	if err != nil {
		panic(fmt.Sprintf("built-in city table is invalid: %v", err))
	}
	return r
}

// LoadFile reads a JSON array of City entries.
func LoadFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cities file: %w", err)
	}
	var entries []City
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing cities file %s: %w", path, err)
	}
	return NewRegistry(entries)
}

// Lookup finds a city by name, ignoring case, spaces and hyphens.
func (r *Registry) Lookup(name string) (weather.Location, error) {
	key := weather.NormalizeName(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	loc, ok := r.byName[key]
	if !ok {
		return weather.Location{}, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}
	return loc, nil
}

// Add registers a location, replacing any entry with the same key.
func (r *Registry) Add(loc weather.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[loc.Key] = loc
}

// List returns every city sorted by name.
func (r *Registry) List() []weather.Location {
	r.mu.RLock()
	out := make([]weather.Location, 0, len(r.byName))
	for _, loc := range r.byName {
		out = append(out, loc)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Len reports the number of registered cities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// Search returns up to limit cities whose names fuzzily match query, best
// match first. An empty query lists the first limit cities by name.
func (r *Registry) Search(query string, limit int) []weather.Location {
	all := r.List()
	if query == "" {
		if limit > 0 && len(all) > limit {
			all = all[:limit]
		}
		return all
	}

	names := make([]string, len(all))
	for i, loc := range all {
		names[i] = loc.Name
	}
	matches := fuzzy.Find(query, names)

	out := make([]weather.Location, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
