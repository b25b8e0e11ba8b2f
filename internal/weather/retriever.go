package weather

import (
	"context"
	"log"
	"time"
)

// Retriever expands a resolved date range into the per-day provider calls it
// needs, enforces the forecast horizon, and merges the results into one
// ForecastSet. Calls are strictly sequential: each day is a distinct API
// invocation and a failure must short-circuit the remaining days.
type Retriever struct {
	provider Provider
	horizon  int // max days into the future the provider can answer for

	// now is injected so tests can pin "today".
	now func() time.Time
}

// NewRetriever creates a Retriever over the given provider with the
// configured maximum forecast horizon in days.
func NewRetriever(provider Provider, horizonDays int) *Retriever {
	return &Retriever{
		provider: provider,
		horizon:  horizonDays,
		now:      time.Now,
	}
}

// WithClock replaces the retriever's time source. Test hook.
func (r *Retriever) WithClock(now func() time.Time) *Retriever {
	r.now = now
	return r
}

// Retrieve fetches the forecast for the city over the resolved range.
// start/end may be nil: a nil start means "today", a nil end means a
// single-day query. Fails with ErrHorizonExceeded before any network call
// when the range reaches past the horizon, and with *ProviderError when the
// provider reports one.
func (r *Retriever) Retrieve(ctx context.Context, city string, start, end *time.Time) (*ForecastSet, error) {
	today := dateOnly(r.now())

	var startDate time.Time
	forecastLength := 1
	switch {
	case start != nil && end != nil:
		// Inclusive of the end date: a same-day range still needs its one
		// day fetched and a Sat-Sun range needs both days.
		startDate = dateOnly(*start)
		forecastLength = daysBetween(dateOnly(*start), dateOnly(*end)) + 1
	case start != nil:
		startDate = dateOnly(*start)
	default:
		startDate = today
	}

	// Horizon check happens before the first provider call.
	furthest := startDate.AddDate(0, 0, forecastLength-1)
	maxDate := today.AddDate(0, 0, r.horizon)
	if furthest.After(maxDate) {
		return nil, ErrHorizonExceeded
	}

	// Explicitly initialized accumulator; each day's payload appends to it.
	set := &ForecastSet{}

	for day := 0; day < forecastLength; day++ {
		date := startDate.AddDate(0, 0, day)

		payload, err := r.provider.FetchDay(ctx, city, date)
		if err != nil {
			// Abandon the remaining days; partial results are never returned.
			log.Printf("provider %s failed for %s on %s: %v",
				r.provider.Name(), city, date.Format("2006-01-02"), err)
			return nil, err
		}

		if len(payload.Weather) > 0 {
			set.Days = append(set.Days, payload.Weather[0])
		}
		// The snapshot is only meaningful for the first day.
		if day == 0 {
			set.Current = payload.CurrentCondition
		}
	}

	return set, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
