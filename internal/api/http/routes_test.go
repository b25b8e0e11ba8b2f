package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-fulfillment/internal/fulfillment"
	"github.com/i474232898/weather-fulfillment/internal/locale"
	"github.com/i474232898/weather-fulfillment/internal/responses"
	"github.com/i474232898/weather-fulfillment/internal/vocab"
	"github.com/i474232898/weather-fulfillment/internal/weather"
)

type stubProvider struct {
	payload *weather.DayPayload
	err     error
}

func (s stubProvider) Name() string { return "stub" }

func (s stubProvider) FetchDay(ctx context.Context, city string, date time.Time) (*weather.DayPayload, error) {
	return s.payload, s.err
}

func stubPayload(tempC int, condition string) *weather.DayPayload {
	day := weather.DailyEntry{
		Date:     "2026-03-02",
		MaxTempC: strconv.Itoa(tempC),
		MinTempC: strconv.Itoa(tempC),
	}
	for h := 0; h < 24; h++ {
		day.Hourly = append(day.Hourly, weather.HourlySample{
			Time:         strconv.Itoa(h * 100),
			TempC:        strconv.Itoa(tempC),
			LangES:       []weather.ConditionLabel{{Value: condition}},
			ChanceOfRain: "40",
		})
	}
	return &weather.DayPayload{
		Weather: []weather.DailyEntry{day},
		CurrentCondition: []weather.CurrentCondition{{
			TempC: strconv.Itoa(tempC),
		}},
	}
}

var testLimits = fulfillment.Limits{
	weather.UnitCelsius:    {Hot: 25, Warm: 15, Chilly: 15, Cold: -5},
	weather.UnitFahrenheit: {Hot: 77, Warm: 59, Chilly: 41, Cold: 23},
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	tables, err := vocab.Load()
	if err != nil {
		t.Fatalf("load vocabulary: %v", err)
	}
	pools, err := responses.Load(func(n int) int { return 0 })
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}

	validator := fulfillment.NewValidator("Madrid", weather.UnitCelsius, tables, nil)
	retriever := weather.NewRetriever(stubProvider{payload: stubPayload(21, "Despejado")}, 13)
	responder := fulfillment.NewResponder(testLimits, pools, tables, locale.New("es"))
	service := fulfillment.NewService(validator, retriever, responder)

	app := fiber.New()
	RegisterRoutes(app, service)
	return app
}

func postWebhook(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func fulfillmentText(t *testing.T, resp *http.Response) string {
	t.Helper()
	var out struct {
		FulfillmentText string `json:"fulfillmentText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out.FulfillmentText
}

func TestWebhookWeatherAction(t *testing.T) {
	app := newTestApp(t)

	resp := postWebhook(t, app, `{"queryResult":{"action":"weather","parameters":{}}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := fulfillmentText(t, resp); got != "El tiempo en Madrid ahora mismo es de 21°C con despejado." {
		t.Fatalf("unexpected fulfillment text: %q", got)
	}
}

func TestWebhookFollowupActionSharesWeatherHandler(t *testing.T) {
	app := newTestApp(t)

	resp := postWebhook(t, app, `{"queryResult":{"action":"weather.followup","parameters":{}}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := fulfillmentText(t, resp); got == "" {
		t.Fatal("expected a fulfillment text")
	}
}

func TestWebhookActivityPromptWhenMissingParameter(t *testing.T) {
	app := newTestApp(t)

	resp := postWebhook(t, app, `{"queryResult":{"action":"weather.activity","parameters":{}}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := fulfillmentText(t, resp); got != "What activity were you thinking of doing?" {
		t.Fatalf("expected the clarifying prompt, got %q", got)
	}
}

func TestWebhookConditionAction(t *testing.T) {
	app := newTestApp(t)

	resp := postWebhook(t, app, `{"queryResult":{"action":"weather.condition","parameters":{"condition":"rain"}}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := fulfillmentText(t, resp); got != "La probabilidad de que llueva es del 40%." {
		t.Fatalf("unexpected fulfillment text: %q", got)
	}
}

func TestWebhookTemperatureAction(t *testing.T) {
	app := newTestApp(t)

	resp := postWebhook(t, app, `{"queryResult":{"action":"weather.temperature","parameters":{"temperature":"hot"}}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	// 21°C lands in the warm bucket, agreeing with a "hot" claim.
	if got := fulfillmentText(t, resp); got != "Sí. La temperatura está bien." {
		t.Fatalf("unexpected fulfillment text: %q", got)
	}
}

func TestWebhookUnrecognizedAction(t *testing.T) {
	app := newTestApp(t)

	resp := postWebhook(t, app, `{"queryResult":{"action":"weather.dance","parameters":{}}}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestWebhookMissingAction(t *testing.T) {
	app := newTestApp(t)

	resp := postWebhook(t, app, `{"queryResult":{"parameters":{}}}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestWebhookMalformedBody(t *testing.T) {
	app := newTestApp(t)

	resp := postWebhook(t, app, `{not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
