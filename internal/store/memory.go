// Package store holds current-weather snapshots in memory and caches
// resolved history in memory and on disk.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/i474232898/india-weather-history/internal/weather"
)

var (
	// ErrNotFound is returned when no data is available for a given location.
	ErrNotFound = errors.New("no weather data for location")
)

// MemoryStore keeps a bounded, time-ordered list of snapshots per city key.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]weather.WeatherSnapshot

	maxHistory int           // snapshots kept per city; <= 0 is unlimited
	maxAge     time.Duration // snapshots older than this are dropped; 0 keeps all
	now        func() time.Time
}

// NewMemoryStore creates a MemoryStore with the given retention limits.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string][]weather.WeatherSnapshot),
		maxHistory: maxHistory,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// SaveSnapshot appends a snapshot for the city and enforces retention.
func (s *MemoryStore) SaveSnapshot(loc weather.Location, snapshot weather.WeatherSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snaps := append(s.data[loc.Key], snapshot)
	// Providers report their own observation times; keep the list ordered.
	if n := len(snaps); n > 1 && snaps[n-1].Timestamp.Before(snaps[n-2].Timestamp) {
		sort.SliceStable(snaps, func(i, j int) bool {
			return snaps[i].Timestamp.Before(snaps[j].Timestamp)
		})
	}
	s.data[loc.Key] = s.retain(snaps)
}

func (s *MemoryStore) retain(snaps []weather.WeatherSnapshot) []weather.WeatherSnapshot {
	if s.maxHistory > 0 && len(snaps) > s.maxHistory {
		snaps = snaps[len(snaps)-s.maxHistory:]
	}
	if s.maxAge > 0 {
		cutoff := s.now().Add(-s.maxAge)
		i := sort.Search(len(snaps), func(i int) bool {
			return !snaps[i].Timestamp.Before(cutoff)
		})
		snaps = snaps[i:]
	}
	return snaps
}

// GetLatest returns the most recent snapshot for a city.
func (s *MemoryStore) GetLatest(loc weather.Location) (weather.WeatherSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snaps := s.data[loc.Key]
	if len(snaps) == 0 {
		return weather.WeatherSnapshot{}, ErrNotFound
	}
	return snaps[len(snaps)-1], nil
}

// GetRange returns the snapshots between from and to, inclusive.
func (s *MemoryStore) GetRange(loc weather.Location, from, to time.Time) ([]weather.WeatherSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []weather.WeatherSnapshot
	for _, snap := range s.data[loc.Key] {
		if !snap.Timestamp.Before(from) && !snap.Timestamp.After(to) {
			result = append(result, snap)
		}
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}

// Keys lists the city keys that currently hold at least one snapshot.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k, snaps := range s.data {
		if len(snaps) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
