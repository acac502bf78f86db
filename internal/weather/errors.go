package weather

import "errors"

var (
	// ErrInvalidRange is returned when a date range starts after it ends.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidCoordinate is returned for latitudes or longitudes outside WGS84.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrSourceUnavailable wraps any failure of a historical source call
	// (network, upstream status, decoding). Resolution treats it like "no data".
	ErrSourceUnavailable = errors.New("historical source unavailable")

	// ErrNoDataAtPoint marks a source query that succeeded but returned no
	// usable records. It is a control-flow signal, never returned to callers.
	ErrNoDataAtPoint = errors.New("no data at point")

	// ErrNoProviders is returned when current weather is requested without
	// any configured provider.
	ErrNoProviders = errors.New("no weather providers configured")

	// ErrProvidersFailed is returned when every configured provider failed.
	ErrProvidersFailed = errors.New("all weather providers failed")
)
