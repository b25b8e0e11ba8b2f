// Package geo resolves geographic coordinates to a city name. The webhook's
// address parameter sometimes carries only lat/lng; validation uses this to
// fill the city before falling back to the configured default.
package geo

import (
	"fmt"

	"github.com/kelvins/geocoder"
)

// Resolver turns coordinates into a city name.
type Resolver interface {
	CityForCoordinates(lat, lng float64) (string, error)
}

// GoogleResolver resolves through the Google Geocoding API.
type GoogleResolver struct{}

// NewGoogleResolver configures the geocoder with the given API key.
func NewGoogleResolver(apiKey string) *GoogleResolver {
	geocoder.ApiKey = apiKey
	return &GoogleResolver{}
}

func (*GoogleResolver) CityForCoordinates(lat, lng float64) (string, error) {
	addresses, err := geocoder.GeocodingReverse(geocoder.Location{
		Latitude:  lat,
		Longitude: lng,
	})
	if err != nil {
		return "", err
	}
	for _, addr := range addresses {
		if addr.City != "" {
			return addr.City, nil
		}
	}
	return "", fmt.Errorf("no city found for %f,%f", lat, lng)
}
