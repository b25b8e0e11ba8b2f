// Package probe periodically checks that the forecast provider answers for
// the default city and keeps a bounded history of outcomes for the health
// endpoint. The request path itself never reads probe data and stays
// cache-free.
package probe

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-fulfillment/internal/weather"
)

// Prober runs the periodic availability check.
type Prober struct {
	scheduler *gocron.Scheduler
	provider  weather.Provider
	city      string
	interval  time.Duration
	history   *History
}

// New creates a Prober for the given provider and city.
func New(provider weather.Provider, city string, interval time.Duration, history *History) *Prober {
	s := gocron.NewScheduler(time.UTC)
	return &Prober{
		scheduler: s,
		provider:  provider,
		city:      city,
		interval:  interval,
		history:   history,
	}
}

// Start schedules the periodic probe and starts the underlying scheduler.
func (p *Prober) Start() error {
	minutes := int(p.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := p.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result := Result{Timestamp: time.Now().UTC(), OK: true}
		if _, err := p.provider.FetchDay(ctx, p.city, time.Now()); err != nil {
			result.OK = false
			result.Error = err.Error()
			log.Printf("probe: provider %s failed for %s: %v", p.provider.Name(), p.city, err)
		}
		p.history.Add(result)
	})
	if err != nil {
		return err
	}

	p.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future probes.
func (p *Prober) Stop() {
	if p.scheduler != nil {
		p.scheduler.Stop()
	}
}
