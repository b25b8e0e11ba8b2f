package httpapi

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/i474232898/weather-fulfillment/internal/fulfillment"
)

var validate = validator.New()

// webhookRequest is the inbound Dialogflow-style fulfillment request.
type webhookRequest struct {
	QueryResult struct {
		Action     string                `json:"action" validate:"required"`
		Parameters fulfillment.RawParams `json:"parameters"`
	} `json:"queryResult" validate:"required"`
}

// RegisterRoutes wires the webhook dispatcher into the Fiber app.
func RegisterRoutes(app *fiber.App, service *fulfillment.Service) {
	app.Post("/webhook", func(c *fiber.Ctx) error {
		var req webhookRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		reqID := uuid.NewString()
		action := req.QueryResult.Action
		ctx := c.UserContext()

		var text string
		switch action {
		case "weather", "weather.followup":
			text = service.Weather(ctx, req.QueryResult.Parameters)
		case "weather.activity":
			text = service.Activity(ctx, req.QueryResult.Parameters)
		case "weather.condition":
			text = service.Condition(ctx, req.QueryResult.Parameters)
		case "weather.outfit":
			text = service.Outfit(ctx, req.QueryResult.Parameters)
		case "weather.temperature":
			text = service.Temperature(ctx, req.QueryResult.Parameters)
		default:
			log.Printf("webhook %s: unrecognized action %q", reqID, action)
			return fiber.NewError(fiber.StatusBadRequest, "unrecognized action")
		}

		log.Printf("webhook %s: action=%s", reqID, action)

		return c.JSON(fiber.Map{
			"fulfillmentText": text,
			"outputContexts":  []interface{}{},
		})
	})
}
