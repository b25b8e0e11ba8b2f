package fulfillment

import (
	"context"
	"time"

	"github.com/i474232898/weather-fulfillment/internal/weather"
)

// Clarifying prompts when a required parameter is missing. Kept in English.
const (
	promptActivity  = "What activity were you thinking of doing?"
	promptCondition = "What weather condition would you like to check?"
	promptOutfit    = "What are you planning on wearing?"
)

// Service is the fulfillment core: one entry point per recognized action.
// Every path returns a plain string; request-path failures are converted to
// user-facing text here and never propagate further.
type Service struct {
	validator *Validator
	retriever *weather.Retriever
	responder *Responder
}

// NewService wires the fulfillment pipeline.
func NewService(validator *Validator, retriever *weather.Retriever, responder *Responder) *Service {
	return &Service{
		validator: validator,
		retriever: retriever,
		responder: responder,
	}
}

// Weather answers the plain forecast query: current conditions, a point in
// time, or a date range.
func (s *Service) Weather(ctx context.Context, raw RawParams) string {
	q, errText := s.prepare(raw)
	if errText != "" {
		return errText
	}
	return s.answer(ctx, q, s.responder.Forecast)
}

// Activity answers whether an activity suits the forecast.
func (s *Service) Activity(ctx context.Context, raw RawParams) string {
	q, errText := s.prepare(raw)
	if errText != "" {
		return errText
	}
	if q.Activity == "" {
		return promptActivity
	}
	return s.answer(ctx, q, s.responder.Activity)
}

// Condition answers the probability of a named condition.
func (s *Service) Condition(ctx context.Context, raw RawParams) string {
	q, errText := s.prepare(raw)
	if errText != "" {
		return errText
	}
	if q.Condition == "" {
		return promptCondition
	}
	return s.answer(ctx, q, s.responder.Condition)
}

// Outfit answers whether an outfit suits the forecast.
func (s *Service) Outfit(ctx context.Context, raw RawParams) string {
	q, errText := s.prepare(raw)
	if errText != "" {
		return errText
	}
	if q.Outfit == "" {
		return promptOutfit
	}
	return s.answer(ctx, q, s.responder.Outfit)
}

// Temperature checks a claimed temperature against the current bucket.
// Without a claim it falls through to the plain forecast answer.
func (s *Service) Temperature(ctx context.Context, raw RawParams) string {
	q, errText := s.prepare(raw)
	if errText != "" {
		return errText
	}
	if q.TemperatureClaim == "" {
		return s.answer(ctx, q, s.responder.Forecast)
	}
	return s.answer(ctx, q, s.responder.TemperatureClaim)
}

// prepare validates the raw parameters. A non-empty second return is the
// terminal user-visible text (validation error or unparseable date).
func (s *Service) prepare(raw RawParams) (*Query, string) {
	errText, q, err := s.validator.Validate(raw)
	if err != nil {
		return nil, userMessage(err)
	}
	if errText != "" {
		return nil, errText
	}
	return q, ""
}

func (s *Service) answer(ctx context.Context, q *Query, respond func(*Query, *weather.ForecastSet) (string, error)) string {
	set, err := s.retrieve(ctx, q)
	if err != nil {
		return userMessage(err)
	}

	text, err := respond(q, set)
	if err != nil {
		return userMessage(err)
	}
	return text
}

func (s *Service) retrieve(ctx context.Context, q *Query) (*weather.ForecastSet, error) {
	var start, end *time.Time
	if q.Start != nil {
		t := q.Start.Time
		start = &t
	}
	if q.End != nil {
		t := q.End.Time
		end = &t
	}
	return s.retriever.Retrieve(ctx, q.City, start, end)
}
