package fulfillment

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/i474232898/weather-fulfillment/internal/geo"
	"github.com/i474232898/weather-fulfillment/internal/vocab"
	"github.com/i474232898/weather-fulfillment/internal/weather"
)

// RawParams is the loosely-structured parameter object delivered by the
// intent-classification front end. Address and date-time have several
// possible shapes and are decoded lazily.
type RawParams struct {
	Address     json.RawMessage `json:"address,omitempty"`
	DateTime    json.RawMessage `json:"date-time,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Activity    string          `json:"activity,omitempty"`
	Condition   string          `json:"condition,omitempty"`
	Outfit      string          `json:"outfit,omitempty"`
	Temperature string          `json:"temperature,omitempty"`
}

// Query is the validated, typed form of a request. Unit is always populated.
// End is only meaningful when Start is set.
type Query struct {
	City  string
	Start *DateTime
	End   *DateTime
	Unit  weather.Unit

	Activity         string
	Condition        string
	Outfit           string
	TemperatureClaim string
}

// Validator converts raw parameters into a Query.
type Validator struct {
	defaultCity string
	defaultUnit weather.Unit
	vocab       *vocab.Tables
	resolver    geo.Resolver // optional; nil disables coordinate lookup
}

// NewValidator builds a Validator. resolver may be nil.
func NewValidator(defaultCity string, defaultUnit weather.Unit, tables *vocab.Tables, resolver geo.Resolver) *Validator {
	return &Validator{
		defaultCity: defaultCity,
		defaultUnit: defaultUnit,
		vocab:       tables,
		resolver:    resolver,
	}
}

// Validate turns raw parameters into a Query. A non-empty returned string is
// the user-visible validation error and is terminal for the request: no
// forecast retrieval happens. The error return is reserved for unparseable
// date-time input.
func (v *Validator) Validate(raw RawParams) (string, *Query, error) {
	var errParts []string
	q := &Query{}

	q.City = v.resolveCity(raw.Address)

	start, end, err := ResolveDateTime(raw.DateTime)
	if err != nil {
		return "", nil, err
	}
	q.Start = start
	q.End = end

	q.Unit = weather.Unit(raw.Unit)
	if q.Unit == "" {
		q.Unit = v.defaultUnit
	}

	// The activity value is stored regardless of validity; the error string
	// alone blocks the request.
	q.Activity = raw.Activity
	if raw.Activity != "" && v.vocab.ClassifyActivity(raw.Activity) == vocab.ActivityUnknown {
		errParts = append(errParts, "unknown activity")
	}

	q.Condition = raw.Condition
	if raw.Condition != "" && v.vocab.IsUnsupported(raw.Condition) {
		errParts = append(errParts, "unsupported condition")
	}

	q.Outfit = raw.Outfit
	q.TemperatureClaim = raw.Temperature

	return strings.Join(errParts, " "), q, nil
}

// resolveCity extracts the city from the structured address, resolves
// coordinates when that is all the address carries, and otherwise falls
// back to the configured default. It never fails.
func (v *Validator) resolveCity(rawAddress json.RawMessage) string {
	if len(rawAddress) == 0 {
		return v.defaultCity
	}

	var addr struct {
		City      string  `json:"city"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.Unmarshal(rawAddress, &addr); err != nil {
		return v.defaultCity
	}

	if addr.City != "" {
		return addr.City
	}

	if v.resolver != nil && (addr.Latitude != 0 || addr.Longitude != 0) {
		city, err := v.resolver.CityForCoordinates(addr.Latitude, addr.Longitude)
		if err != nil {
			log.Printf("geocoding failed for %f,%f: %v", addr.Latitude, addr.Longitude, err)
			return v.defaultCity
		}
		return city
	}

	return v.defaultCity
}
