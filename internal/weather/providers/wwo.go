package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-fulfillment/internal/weather"
)

const defaultBaseURL = "https://api.worldweatheronline.com/premium/v1/weather.ashx"

// WWOProvider implements the weather.Provider interface for
// WorldWeatherOnline's per-day forecast endpoint.
type WWOProvider struct {
	name     string
	apiKey   string
	language string
	baseURL  string
	client   *http.Client
	circuit  *gobreaker.CircuitBreaker
}

// NewWWOProvider builds a WWO provider. baseURL may be empty to use the
// production endpoint; tests point it at an httptest server.
func NewWWOProvider(client *http.Client, apiKey, language, baseURL string) *WWOProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "wwo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &WWOProvider{
		name:     "worldweatheronline",
		apiKey:   apiKey,
		language: language,
		baseURL:  baseURL,
		client:   client,
		circuit:  cb,
	}
}

func (p *WWOProvider) Name() string {
	return p.name
}

// FetchDay retrieves the forecast for one city and one calendar day.
// The parameter set besides city and date is fixed protocol: one-day window,
// no moon data, current conditions on, hourly resolution, forecast extras on.
func (p *WWOProvider) FetchDay(ctx context.Context, city string, date time.Time) (*weather.DayPayload, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("wwo api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		values.Set("q", city)
		values.Set("format", "json")
		values.Set("num_of_days", "1")
		values.Set("mca", "no")
		values.Set("lang", p.language)
		values.Set("cc", "yes")
		values.Set("tp", "1")
		values.Set("fx", "yes")
		values.Set("date", date.Format("2006-01-02"))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Data struct {
			weather.DayPayload
			Error []struct {
				Msg string `json:"msg"`
			} `json:"error"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	// The provider signals failure inside a 200 response.
	if len(payload.Data.Error) > 0 {
		return nil, &weather.ProviderError{Message: payload.Data.Error[0].Msg}
	}

	return &payload.Data.DayPayload, nil
}
