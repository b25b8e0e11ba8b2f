package fulfillment

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTime is a resolved date or date-time. HasTime records whether the
// source text carried a clock time, which changes how a point-in-time
// forecast is phrased.
type DateTime struct {
	Time    time.Time
	HasTime bool
}

// Layouts accepted for the ISO-8601 date-time parameters, tried in order.
// The date-only layout is last so HasTime is tracked correctly.
var dateTimeLayouts = []struct {
	layout  string
	hasTime bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02", false},
}

// ResolveDateTime normalizes the raw date-time parameter into concrete
// start/end values. The input may be absent, a bare ISO-8601 string, or an
// object carrying startDate/endDate or dateTime keys. Absent input resolves
// to (nil, nil); a single value resolves to (start, nil). Unparseable input
// fails with ErrInvalidDate.
func ResolveDateTime(raw json.RawMessage) (start, end *DateTime, err error) {
	if len(raw) == 0 || string(raw) == "null" || string(raw) == `""` {
		return nil, nil, nil
	}

	var interval struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		DateTime  string `json:"dateTime"`
	}
	if json.Unmarshal(raw, &interval) == nil {
		if interval.EndDate != "" {
			s, err := parseISO(interval.StartDate)
			if err != nil {
				return nil, nil, err
			}
			e, err := parseISO(interval.EndDate)
			if err != nil {
				return nil, nil, err
			}
			return &s, &e, nil
		}
		if interval.DateTime != "" {
			s, err := parseISO(interval.DateTime)
			if err != nil {
				return nil, nil, err
			}
			return &s, nil, nil
		}
	}

	var single string
	if json.Unmarshal(raw, &single) == nil {
		s, err := parseISO(single)
		if err != nil {
			return nil, nil, err
		}
		return &s, nil, nil
	}

	return nil, nil, fmt.Errorf("%w: %s", ErrInvalidDate, raw)
}

func parseISO(s string) (DateTime, error) {
	for _, l := range dateTimeLayouts {
		if t, err := time.Parse(l.layout, s); err == nil {
			return DateTime{Time: t, HasTime: l.hasTime}, nil
		}
	}
	return DateTime{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
