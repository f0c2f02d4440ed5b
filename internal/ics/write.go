package ics

import (
	"os"
	"time"

	ical "github.com/arran4/golang-ical"
)

const timestampUTC = "20060102T150405Z"

// NewCalendar creates an output calendar carrying the master calendar's
// product id and version.
func NewCalendar(prodID, version string) *ical.Calendar {
	cal := ical.NewCalendar()
	setCalendarProperty(cal, "PRODID", prodID)
	setCalendarProperty(cal, "VERSION", version)
	return cal
}

func setCalendarProperty(cal *ical.Calendar, name, value string) {
	for i := range cal.CalendarProperties {
		if cal.CalendarProperties[i].IANAToken == name {
			cal.CalendarProperties[i].Value = value
			return
		}
	}
	cal.CalendarProperties = append(cal.CalendarProperties, ical.CalendarProperty{
		BaseProperty: ical.BaseProperty{IANAToken: name, Value: value},
	})
}

// FormatDateTime renders an instant as an ICS UTC date-time value.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(timestampUTC)
}

// WriteFile serializes the calendar to path.
func WriteFile(path string, cal *ical.Calendar) error {
	return os.WriteFile(path, []byte(cal.Serialize()), 0o644)
}
