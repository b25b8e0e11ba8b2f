package weather

import "strconv"

// Unit is a temperature unit: Celsius or Fahrenheit.
type Unit string

const (
	UnitCelsius    Unit = "C"
	UnitFahrenheit Unit = "F"
)

// WWO encodes every numeric field as a JSON string; accessors parse on
// demand and treat malformed values as zero.

// ConditionLabel is the localized condition description wrapper used
// throughout the WWO payload.
type ConditionLabel struct {
	Value string `json:"value"`
}

// HourlySample is one hourly forecast entry of a day. Time is military
// format without a colon ("0", "100", ..., "2300").
type HourlySample struct {
	Time  string `json:"time"`
	TempC string `json:"tempC"`
	TempF string `json:"tempF"`

	LangES []ConditionLabel `json:"lang_es"`

	ChanceOfRain     string `json:"chanceofrain"`
	ChanceOfSnow     string `json:"chanceofsnow"`
	ChanceOfSunshine string `json:"chanceofsunshine"`
	ChanceOfWindy    string `json:"chanceofwindy"`
	ChanceOfFog      string `json:"chanceoffog"`
	ChanceOfThunder  string `json:"chanceofthundery"`
	ChanceOfOvercast string `json:"chanceofovercast"`
	ChanceOfFrost    string `json:"chanceoffrost"`
}

// Temp returns the sample temperature in the requested unit.
func (h HourlySample) Temp(unit Unit) int {
	if unit == UnitFahrenheit {
		return atoi(h.TempF)
	}
	return atoi(h.TempC)
}

// Condition returns the localized condition text of the sample.
func (h HourlySample) Condition() string {
	if len(h.LangES) == 0 {
		return ""
	}
	return h.LangES[0].Value
}

// Chance returns the probability value of the named provider field,
// e.g. "chanceofrain". The second return reports whether the field exists.
func (h HourlySample) Chance(field string) (int, bool) {
	switch field {
	case "chanceofrain":
		return atoi(h.ChanceOfRain), true
	case "chanceofsnow":
		return atoi(h.ChanceOfSnow), true
	case "chanceofsunshine":
		return atoi(h.ChanceOfSunshine), true
	case "chanceofwindy":
		return atoi(h.ChanceOfWindy), true
	case "chanceoffog":
		return atoi(h.ChanceOfFog), true
	case "chanceofthundery":
		return atoi(h.ChanceOfThunder), true
	case "chanceofovercast":
		return atoi(h.ChanceOfOvercast), true
	case "chanceoffrost":
		return atoi(h.ChanceOfFrost), true
	}
	return 0, false
}

// DailyEntry is the per-day forecast block of the WWO payload.
type DailyEntry struct {
	Date     string         `json:"date"`
	MaxTempC string         `json:"maxtempC"`
	MaxTempF string         `json:"maxtempF"`
	MinTempC string         `json:"mintempC"`
	MinTempF string         `json:"mintempF"`
	Hourly   []HourlySample `json:"hourly"`
}

// MaxTemp returns the reported daily maximum in the requested unit.
func (d DailyEntry) MaxTemp(unit Unit) int {
	if unit == UnitFahrenheit {
		return atoi(d.MaxTempF)
	}
	return atoi(d.MaxTempC)
}

// MinTemp returns the reported daily minimum in the requested unit.
func (d DailyEntry) MinTemp(unit Unit) int {
	if unit == UnitFahrenheit {
		return atoi(d.MinTempF)
	}
	return atoi(d.MinTempC)
}

// CurrentCondition is the "right now" snapshot WWO includes with the first
// day of a forecast.
type CurrentCondition struct {
	TempC  string           `json:"temp_C"`
	TempF  string           `json:"temp_F"`
	LangES []ConditionLabel `json:"lang_es"`
}

// Temp returns the current temperature in the requested unit.
func (c CurrentCondition) Temp(unit Unit) int {
	if unit == UnitFahrenheit {
		return atoi(c.TempF)
	}
	return atoi(c.TempC)
}

// DayPayload is the decoded `data` object of one single-day provider call.
type DayPayload struct {
	Weather          []DailyEntry       `json:"weather"`
	CurrentCondition []CurrentCondition `json:"current_condition"`
}

// ForecastSet is the merged multi-day forecast for one resolved query:
// day entries ordered by offset from the range start, plus the first day's
// current-conditions snapshot. Built once per request and never mutated.
type ForecastSet struct {
	Days    []DailyEntry
	Current []CurrentCondition
}

// CurrentTemp returns the snapshot temperature in the requested unit.
// Only meaningful when the set covers "now".
func (f *ForecastSet) CurrentTemp(unit Unit) (int, error) {
	if len(f.Current) == 0 {
		return 0, ErrEmptyForecast
	}
	return f.Current[0].Temp(unit), nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
