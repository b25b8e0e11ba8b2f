package weather

import "strings"

// Index of the sample used as a day's representative condition: the hourly
// layout has 24 entries, so 12 is local noon.
const noonIndex = 12

// MaxMinTemp flattens every hourly sample of every day in the set and
// returns the integer temperature extremes in the requested unit.
func MaxMinTemp(set *ForecastSet, unit Unit) (maxTemp, minTemp int, err error) {
	first := true
	for _, day := range set.Days {
		for _, hour := range day.Hourly {
			t := hour.Temp(unit)
			if first {
				maxTemp, minTemp = t, t
				first = false
				continue
			}
			if t > maxTemp {
				maxTemp = t
			}
			if t < minTemp {
				minTemp = t
			}
		}
	}
	if first {
		return 0, 0, ErrEmptyForecast
	}
	return maxTemp, minTemp, nil
}

// NoonCondition returns the lower-cased condition text of the sample closest
// to local noon for the given day.
func NoonCondition(day DailyEntry) string {
	if len(day.Hourly) == 0 {
		return ""
	}
	idx := noonIndex
	if idx >= len(day.Hourly) {
		idx = len(day.Hourly) - 1
	}
	return strings.ToLower(day.Hourly[idx].Condition())
}

// NoonSample returns the hourly sample closest to local noon for the given
// day. The second return is false when the day has no samples.
func NoonSample(day DailyEntry) (HourlySample, bool) {
	if len(day.Hourly) == 0 {
		return HourlySample{}, false
	}
	idx := noonIndex
	if idx >= len(day.Hourly) {
		idx = len(day.Hourly) - 1
	}
	return day.Hourly[idx], true
}
