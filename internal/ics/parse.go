package ics

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"dentcal/internal/log"
	"dentcal/internal/recur"
)

// Event is a normalized VEVENT from the master calendar. The underlying
// component stays attached (read-only) so pass-through copying can carry
// fields the engine itself never interprets.
type Event struct {
	Summary string
	Start   time.Time

	// Weekly is false when the event carries a non-weekly RRULE; such an
	// event cannot be expanded by this engine and may only pass through.
	Weekly bool
	// Count is the declared weekly repeat count; 1 when there is no RRULE.
	Count   int
	ExDates []time.Time

	V *ical.VEvent
}

// Calendar is the parsed master calendar: the header fields the outputs
// copy plus every event.
type Calendar struct {
	ProdID  string
	Version string
	Events  []Event
}

// ReadFile parses an ICS file, normalizing every event's times into loc.
// Individual malformed events are logged and skipped; an unreadable or
// unparseable file is an error.
func ReadFile(path string, loc *time.Location) (*Calendar, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(body, loc, path)
}

// Parse parses an ICS payload. name is used for logging only.
func Parse(body []byte, loc *time.Location, name string) (*Calendar, error) {
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}

	src, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	out := &Calendar{}
	for _, p := range src.CalendarProperties {
		switch p.IANAToken {
		case "PRODID":
			out.ProdID = p.Value
		case "VERSION":
			out.Version = p.Value
		}
	}

	for _, ve := range src.Events() {
		ev, perr := parseVEvent(ve, loc)
		if perr != nil {
			log.Error("ics: skipping malformed event", perr, "file", name)
			continue
		}
		out.Events = append(out.Events, ev)
	}

	log.Info("ics parsed", "file", name, "events", len(out.Events))
	return out, nil
}

func parseVEvent(ve *ical.VEvent, loc *time.Location) (Event, error) {
	out := Event{Weekly: true, Count: 1, V: ve}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return out, err
	}
	// Re-anchor in the canonical zone; file TZIDs vary by authoring tool.
	out.Start = recur.Rebase(start, loc)

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		opt, rerr := rrule.StrToROption(p.Value)
		if rerr != nil {
			return out, rerr
		}
		out.Weekly = opt.Freq == rrule.WEEKLY
		if opt.Count > 0 {
			out.Count = opt.Count
		}
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			t, terr := parseICSTime(part, loc)
			if terr != nil {
				return out, terr
			}
			out.ExDates = append(out.ExDates, t.In(loc))
		}
	}

	return out, nil
}

// parseICSTime handles the basic DATE/DATE-TIME/UTC value forms EXDATE uses.
func parseICSTime(v string, loc *time.Location) (time.Time, error) {
	switch {
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, loc)
	default:
		return time.ParseInLocation("20060102", v, loc)
	}
}
