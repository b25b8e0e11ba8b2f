package fulfillment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/i474232898/weather-fulfillment/internal/locale"
	"github.com/i474232898/weather-fulfillment/internal/responses"
	"github.com/i474232898/weather-fulfillment/internal/vocab"
	"github.com/i474232898/weather-fulfillment/internal/weather"
)

// Responder derives a human-readable answer from a validated query and its
// forecast. Each query kind has its own decision procedure; all of them are
// pure functions of (query, forecast, clock).
type Responder struct {
	limits Limits
	pools  *responses.Pools
	vocab  *vocab.Tables
	fmtr   *locale.Formatter

	now func() time.Time
}

// NewResponder wires the responder's collaborators.
func NewResponder(limits Limits, pools *responses.Pools, tables *vocab.Tables, fmtr *locale.Formatter) *Responder {
	return &Responder{
		limits: limits,
		pools:  pools,
		vocab:  tables,
		fmtr:   fmtr,
		now:    time.Now,
	}
}

// WithClock replaces the responder's time source. Test hook.
func (r *Responder) WithClock(now func() time.Time) *Responder {
	r.now = now
	return r
}

// Forecast answers the plain weather query: a date range, a single
// date/time, or current conditions when no date was given.
func (r *Responder) Forecast(q *Query, set *weather.ForecastSet) (string, error) {
	switch {
	case q.Start != nil && q.End != nil:
		return r.periodResponse(q, set)
	case q.Start != nil:
		return r.dateResponse(q, set)
	default:
		return r.currentResponse(q, set)
	}
}

func (r *Responder) currentResponse(q *Query, set *weather.ForecastSet) (string, error) {
	temp, err := set.CurrentTemp(q.Unit)
	if err != nil {
		return "", err
	}
	if len(set.Days) == 0 {
		return "", weather.ErrEmptyForecast
	}
	condition := r.vocab.PatchConditionText(weather.NoonCondition(set.Days[0]))

	return r.pools.Render(responses.CategoryCurrent, map[string]string{
		"place":       q.City,
		"temperature": formatTemp(temp, q.Unit),
		"condition":   condition,
	}), nil
}

// dateResponse phrases the forecast for a single date or date-time. The
// phrasing branches on recency: today with a clock time, within a week, or
// further out.
func (r *Responder) dateResponse(q *Query, set *weather.ForecastSet) (string, error) {
	if len(set.Days) == 0 {
		return "", weather.ErrEmptyForecast
	}
	day0 := set.Days[0]

	// Midpoint of the day's reported extremes.
	temp := (day0.MaxTemp(q.Unit) + day0.MinTemp(q.Unit)) / 2
	temperature := formatTemp(temp, q.Unit)
	condition := r.vocab.PatchConditionText(weather.NoonCondition(day0))

	today := dateOnly(r.now())
	startDate := dateOnly(q.Start.Time)

	if startDate.Equal(today) && q.Start.HasTime {
		return r.pools.Render(responses.CategoryDateTime, map[string]string{
			"place":       q.City,
			"time":        r.fmtr.Clock(q.Start.Time),
			"temperature": temperature,
			"condition":   condition,
			"day":         "Hoy",
		}), nil
	}

	if !startDate.After(today.AddDate(0, 0, 7)) {
		day := "El " + r.fmtr.Weekday(q.Start.Time)
		if startDate.Equal(today) {
			day = "Hoy"
		}
		return r.pools.Render(responses.CategoryDate, map[string]string{
			"place":       q.City,
			"day":         day,
			"temperature": temperature,
			"condition":   condition,
		}), nil
	}

	return r.pools.Render(responses.CategoryWeekday, map[string]string{
		"place":       q.City,
		"condition":   condition,
		"temperature": temperature,
		"date":        r.fmtr.MonthDay(q.Start.Time),
	}), nil
}

// periodResponse phrases the forecast for a date range: a span of hours
// within one day, the Sat-Sun weekend special case, or a general multi-day
// range.
func (r *Responder) periodResponse(q *Query, set *weather.ForecastSet) (string, error) {
	if len(set.Days) == 0 {
		return "", weather.ErrEmptyForecast
	}

	start, end := q.Start.Time, q.End.Time

	if start.Day() == end.Day() {
		return r.sameDayPeriodResponse(q, set)
	}

	if start.Weekday() == time.Saturday && end.Weekday() == time.Sunday && len(set.Days) >= 2 {
		sat, sun := set.Days[0], set.Days[1]
		return r.pools.Render(responses.CategoryDatePeriodWeekend, map[string]string{
			"city":          q.City,
			"condition_sat": weather.NoonCondition(sat),
			"sat_temp_min":  strconv.Itoa(sat.MinTemp(q.Unit)),
			"sat_temp_max":  strconv.Itoa(sat.MaxTemp(q.Unit)),
			"condition_sun": weather.NoonCondition(sun),
			"sun_temp_min":  strconv.Itoa(sun.MinTemp(q.Unit)),
			"sun_temp_max":  strconv.Itoa(sun.MaxTemp(q.Unit)),
		}), nil
	}

	maxTemp, minTemp, err := weather.MaxMinTemp(set, q.Unit)
	if err != nil {
		return "", err
	}
	return r.pools.Render(responses.CategoryDatePeriod, map[string]string{
		"date_start":      start.Format("2006-01-02"),
		"date_end":        end.Format("2006-01-02"),
		"city":            q.City,
		"condition":       weather.NoonCondition(set.Days[0]),
		"degree_list_min": formatTemp(minTemp, q.Unit),
		"degree_list_max": formatTemp(maxTemp, q.Unit),
	}), nil
}

func (r *Responder) sameDayPeriodResponse(q *Query, set *weather.ForecastSet) (string, error) {
	day0 := set.Days[0]
	startHour, endHour := q.Start.Time.Hour(), q.End.Time.Hour()

	// Average the hourly temperatures whose military-time hour falls within
	// the span, inclusive on both ends.
	want := make(map[string]struct{})
	for hour := startHour; hour <= endHour; hour++ {
		want[strconv.Itoa(hour*100)] = struct{}{}
	}

	var sum, count int
	for _, h := range day0.Hourly {
		if _, ok := want[h.Time]; ok {
			sum += h.Temp(q.Unit)
			count++
		}
	}
	if count == 0 {
		return "", weather.ErrEmptyForecast
	}
	temperature := formatTemp(sum/count, q.Unit)

	// Representative sample for the span, one past the start hour.
	condIdx := startHour + 1
	if condIdx >= len(day0.Hourly) {
		condIdx = len(day0.Hourly) - 1
	}
	condition := r.vocab.PatchConditionText(strings.ToLower(day0.Hourly[condIdx].Condition()))

	// Bucket boundaries are checked in order, odd corners included: a
	// 13:00-15:00 span lands in "tonight".
	var timePeriod string
	switch {
	case startHour <= 12 && endHour <= 16:
		timePeriod = "afternoon"
	case startHour <= 0 && endHour <= 8:
		timePeriod = "night"
	case startHour <= 16 && endHour <= 23:
		timePeriod = "tonight"
	default:
		timePeriod = "morning"
	}

	if timePeriod != "" {
		return r.pools.Render(responses.CategoryTimePeriodDefined, map[string]string{
			"place":       q.City,
			"time_period": timePeriod,
			"temperature": temperature,
			"condition":   condition,
		}), nil
	}

	// Unreachable while the rule above is total; kept as the documented
	// fall-back for spans no single word describes.
	return r.pools.Render(responses.CategoryTimePeriod, map[string]string{
		"condition":  condition,
		"city":       q.City,
		"temp":       temperature,
		"time_start": r.fmtr.Clock(q.Start.Time),
		"time_end":   r.fmtr.Clock(q.End.Time),
	}), nil
}

// Activity answers whether the queried activity suits the forecast.
func (r *Responder) Activity(q *Query, set *weather.ForecastSet) (string, error) {
	class := r.vocab.ClassifyActivity(q.Activity)
	if class == vocab.ActivityUnknown {
		return fallbackUnknown(q.Activity), nil
	}

	maxTemp, _, err := weather.MaxMinTemp(set, q.Unit)
	if err != nil {
		return "", err
	}
	limits := r.limits[q.Unit]

	switch class {
	case vocab.ActivityAlwaysOK:
		return r.pools.Render(responses.CategoryActivityYes, nil), nil
	case vocab.ActivityWinterOnly:
		if maxTemp <= limits.Cold {
			return r.pools.Render(responses.CategoryActivityYes, nil), nil
		}
		return r.pools.Render(responses.CategoryActivityNo, nil), nil
	default: // summer-only
		if maxTemp >= limits.Warm {
			return r.pools.Render(responses.CategoryActivityYes, nil), nil
		}
		return r.pools.Render(responses.CategoryActivityNo, nil), nil
	}
}

// Condition answers the probability of a named weather condition using the
// provider's noon probability field for it.
func (r *Responder) Condition(q *Query, set *weather.ForecastSet) (string, error) {
	field, ok := r.vocab.ConditionField(q.Condition)
	if !ok {
		return fallbackUnknown(q.Condition), nil
	}
	if len(set.Days) == 0 {
		return "", weather.ErrEmptyForecast
	}

	sample, ok := weather.NoonSample(set.Days[0])
	if !ok {
		return "", weather.ErrEmptyForecast
	}
	chance, _ := sample.Chance(field)

	return r.pools.Render(responses.CategoryCondition, map[string]string{
		"condition_original": r.vocab.ConditionPhrase(q.Condition),
		"condition":          strconv.Itoa(chance),
	}), nil
}

// Outfit answers whether the queried outfit suits the forecast. Temperature
// categories compare against the bucket thresholds and answer with a bare
// yes/no phrase; rain/snow/sun categories compare the matching noon
// probability against 50% and answer with the probability template.
func (r *Responder) Outfit(q *Query, set *weather.ForecastSet) (string, error) {
	class := r.vocab.ClassifyOutfit(q.Outfit)
	if class == vocab.OutfitUnknown {
		return fallbackUnknown(q.Outfit), nil
	}

	maxTemp, minTemp, err := weather.MaxMinTemp(set, q.Unit)
	if err != nil {
		return "", err
	}
	limits := r.limits[q.Unit]

	var answerCat string
	switch class {
	case vocab.OutfitColdWeather:
		answerCat = yesNo(minTemp < limits.Chilly)
	case vocab.OutfitWarmWeather:
		answerCat = yesNo(maxTemp < limits.Warm)
	case vocab.OutfitHotWeather:
		answerCat = yesNo(maxTemp < limits.Hot)
	default:
		return r.probabilityOutfitResponse(q, set, class)
	}

	return r.pools.Render(answerCat, nil), nil
}

func (r *Responder) probabilityOutfitResponse(q *Query, set *weather.ForecastSet, class vocab.OutfitClass) (string, error) {
	if len(set.Days) == 0 {
		return "", weather.ErrEmptyForecast
	}
	sample, ok := weather.NoonSample(set.Days[0])
	if !ok {
		return "", weather.ErrEmptyForecast
	}

	var phrase, field string
	var affirmative func(chance int) bool
	switch class {
	case vocab.OutfitRain:
		phrase, field = "llueva", "chanceofrain"
		affirmative = func(c int) bool { return c < 50 }
	case vocab.OutfitSnow:
		phrase, field = "nieve", "chanceofsnow"
		affirmative = func(c int) bool { return c < 50 }
	default: // sun; polarity inverted
		phrase, field = "haga sol", "chanceofsunshine"
		affirmative = func(c int) bool { return c > 50 }
	}

	chance, _ := sample.Chance(field)

	return r.pools.Render(responses.CategoryOutfit, map[string]string{
		"condition_original": phrase,
		"condition":          strconv.Itoa(chance),
		"answer":             r.pools.Render(yesNo(affirmative(chance)), nil),
	}), nil
}

// TemperatureClaim checks a claimed temperature ("hot"/"cold") against the
// current temperature bucket. Hot and warm agree with a "hot" claim; chilly
// and cold agree with a "cold" claim.
func (r *Responder) TemperatureClaim(q *Query, set *weather.ForecastSet) (string, error) {
	temp, err := set.CurrentTemp(q.Unit)
	if err != nil {
		return "", err
	}
	limits := r.limits[q.Unit]

	header := "Sí. "
	var bucket string
	switch {
	case temp >= limits.Hot:
		if q.TemperatureClaim == "cold" {
			header = "No. "
		}
		bucket = responses.CategoryHot
	case temp > limits.Chilly:
		if q.TemperatureClaim == "cold" {
			header = "No. "
		}
		bucket = responses.CategoryWarm
	case temp > limits.Cold:
		if q.TemperatureClaim == "hot" {
			header = "No. "
		}
		bucket = responses.CategoryChilly
	default:
		if q.TemperatureClaim == "hot" {
			header = "No. "
		}
		bucket = responses.CategoryCold
	}

	return header + r.pools.Render(bucket, nil), nil
}

// fallbackUnknown is the untemplated English fallback for unrecognized
// activity/condition/outfit values.
func fallbackUnknown(value string) string {
	return fmt.Sprintf("I don't know about %s", value)
}

func yesNo(affirmative bool) string {
	if affirmative {
		return responses.CategoryYes
	}
	return responses.CategoryNo
}

func formatTemp(v int, unit weather.Unit) string {
	return fmt.Sprintf("%d°%s", v, unit)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
