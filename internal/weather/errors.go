package weather

import "errors"

var (
	// ErrEmptyForecast is returned when an aggregate is requested over a
	// forecast with no hourly samples. The retriever contract should make
	// this impossible; callers still check.
	ErrEmptyForecast = errors.New("forecast has no hourly samples")

	// ErrHorizonExceeded is returned when the requested range ends beyond
	// the configured forecast horizon. No provider call is made.
	ErrHorizonExceeded = errors.New("requested date beyond forecast horizon")
)

// ProviderError carries the human-readable message the provider reported in
// its payload error field. It is surfaced to the user verbatim.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}
