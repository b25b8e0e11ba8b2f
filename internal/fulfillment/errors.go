package fulfillment

import (
	"errors"

	"github.com/i474232898/weather-fulfillment/internal/weather"
)

// ErrInvalidDate is returned when a date-time parameter cannot be parsed.
var ErrInvalidDate = errors.New("unparseable date-time parameter")

// User-facing sentences for request failures.
const (
	msgHorizonExceeded = "Lo siento. No puedo encontrar un pronóstico tan lejano."
	msgInvalidDate     = "Lo siento, no he entendido la fecha. ¿Puedes repetirla?"
	msgRetrieveFailed  = "Lo siento, ahora mismo no puedo consultar el pronóstico."
)

// userMessage converts any request-path error into the string shown to the
// user. Provider-reported messages surface verbatim; nothing crashes the
// process or is retried.
func userMessage(err error) string {
	var provErr *weather.ProviderError
	switch {
	case errors.Is(err, weather.ErrHorizonExceeded):
		return msgHorizonExceeded
	case errors.As(err, &provErr):
		return provErr.Message
	case errors.Is(err, ErrInvalidDate):
		return msgInvalidDate
	default:
		return msgRetrieveFailed
	}
}
