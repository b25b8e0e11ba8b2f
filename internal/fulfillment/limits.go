package fulfillment

import "github.com/i474232898/weather-fulfillment/internal/weather"

// TempLimits holds the temperature bucket boundaries for one unit.
type TempLimits struct {
	Hot    int
	Warm   int
	Chilly int
	Cold   int
}

// Limits maps each supported unit to its bucket boundaries.
type Limits map[weather.Unit]TempLimits
