package weather

import (
	"context"
	"time"
)

// Provider abstracts the external per-day forecast source.
type Provider interface {
	Name() string
	// FetchDay returns the forecast payload for one city and calendar day.
	// A payload-level provider error is returned as *ProviderError.
	FetchDay(ctx context.Context, city string, date time.Time) (*DayPayload, error)
}
