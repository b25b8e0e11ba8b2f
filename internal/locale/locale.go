package locale

import (
	"strconv"
	"time"
)

// Formatter renders weekday, month-day and clock labels in a fixed language.
// It replaces process-wide locale state: the responder receives one as a
// collaborator and never touches the global locale.
type Formatter struct {
	lang     string
	weekdays [7]string
	months   [12]string
}

var weekdayNames = map[string][7]string{
	"es": {"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	"en": {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
}

var monthNames = map[string][12]string{
	"es": {"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	"en": {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
}

// New returns a Formatter for the given language code, falling back to
// English for unknown codes.
func New(lang string) *Formatter {
	wd, ok := weekdayNames[lang]
	if !ok {
		lang = "en"
		wd = weekdayNames["en"]
	}
	return &Formatter{
		lang:     lang,
		weekdays: wd,
		months:   monthNames[lang],
	}
}

// Weekday returns the localized weekday name for t.
func (f *Formatter) Weekday(t time.Time) string {
	return f.weekdays[int(t.Weekday())]
}

// MonthDay returns the localized "month day" label for t, e.g. "enero 2".
func (f *Formatter) MonthDay(t time.Time) string {
	return f.months[int(t.Month())-1] + " " + strconv.Itoa(t.Day())
}

// Clock returns the 12-hour clock label for t, e.g. "03:04PM".
func (f *Formatter) Clock(t time.Time) string {
	return t.Format("03:04PM")
}
