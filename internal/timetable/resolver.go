// Package timetable resolves the wall-clock window of a clinic session from
// the institution's published timetable. The timetable is irregular: a fixed
// default week per cohort half, overridden by a February screening window and
// by the term-end days in May. Each override is kept as its own table and the
// tables are consulted in priority order, most specific first.
package timetable

import (
	"fmt"
	"time"

	"dentcal/internal/model"
)

// Clock is a wall-clock hour/minute pair.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Window is the resolved start/end of one session. Every window in the rule
// tables has Start strictly before End; pairing them in one literal keeps the
// start and end tables from drifting apart.
type Window struct {
	Start Clock
	End   Clock
}

// On anchors the window to a calendar date in the given zone.
func (w Window) On(year int, month time.Month, day int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, day, w.Start.Hour, w.Start.Minute, 0, 0, loc)
	end := time.Date(year, month, day, w.End.Hour, w.End.Minute, 0, 0, loc)
	return start, end
}

// Query carries everything a rule may discriminate on.
type Query struct {
	Month     time.Month
	Day       int
	Weekday   time.Weekday
	Slot      model.Slot
	Cohort    int
	ClinicKey string
}

// NoRuleError reports a (date, slot, weekday, cohort) combination no rule
// layer covers. This is always a data problem (a session outside the
// published timetable), never a valid zero-length session.
type NoRuleError struct {
	Query Query
}

func (e *NoRuleError) Error() string {
	q := e.Query
	return fmt.Sprintf("timetable: no rule for %s %d %s slot %s cohort %d",
		q.Month, q.Day, q.Weekday, q.Slot, q.Cohort)
}

// layer is one override level: a named rule table consulted in order. A layer
// that does not apply to the query reports false and resolution falls
// through to the next, more general layer.
type layer struct {
	name    string
	resolve func(q Query) (Window, bool)
}

// Resolver resolves session windows. The zero value is not usable; construct
// with New.
type Resolver struct {
	boundary int
	layers   []layer
}

// New builds a Resolver. boundary is the cohort id splitting the two weekly
// regimes: ids <= boundary use the low table, ids above it the high table.
func New(boundary int) *Resolver {
	r := &Resolver{boundary: boundary}
	r.layers = []layer{
		{name: "screening", resolve: r.resolveScreening},
		{name: "term-end", resolve: r.resolveTermEnd},
		{name: "default", resolve: r.resolveDefault},
	}
	return r
}

// Resolve returns the session window for the query, or a *NoRuleError if no
// layer covers it.
func (r *Resolver) Resolve(q Query) (Window, error) {
	for _, l := range r.layers {
		if w, ok := l.resolve(q); ok {
			return w, nil
		}
	}
	return Window{}, &NoRuleError{Query: q}
}

// resolveScreening handles the orthodontics screening window: a fixed
// February date range where Tuesday and Thursday sessions shift, with times
// varying by cohort quartile. Any other weekday in the range falls through.
func (r *Resolver) resolveScreening(q Query) (Window, bool) {
	if q.Month != screeningMonth || q.Day < screeningFirstDay || q.Day > screeningLastDay {
		return Window{}, false
	}
	band := -1
	switch {
	case q.Cohort <= 30:
		band = 0
	case q.Cohort <= 60:
		band = 1
	case q.Cohort <= 90:
		band = 2
	case q.Cohort <= 120:
		band = 3
	default:
		return Window{}, false
	}
	day, ok := screeningTable[band][q.Weekday]
	if !ok {
		return Window{}, false
	}
	return day.window(q.Slot), true
}

// resolveTermEnd handles the final clinic days in early May. Days 3-4 split
// by cohort half and Monday-vs-rest, day 5 is flat, days 6-14 run two slots.
func (r *Resolver) resolveTermEnd(q Query) (Window, bool) {
	if q.Month != termEndMonth {
		return Window{}, false
	}
	switch {
	case q.Day >= 3 && q.Day <= 4:
		half := termEndEarlyLow
		if q.Cohort > r.boundary {
			half = termEndEarlyHigh
		}
		if q.Weekday == time.Monday {
			return half.monday.window(q.Slot), true
		}
		return half.rest.window(q.Slot), true
	case q.Day == 5:
		return termEndDay5.window(q.Slot), true
	case q.Day >= 6 && q.Day <= 14:
		return termEndFinal.window(q.Slot), true
	}
	return Window{}, false
}

// resolveDefault is the regular weekly table per cohort half. The
// second-afternoon entries carry a per-clinic override map: hospital
// rotations diverge there (today only in the end time), and that map is the
// place further rotation variants get added.
func (r *Resolver) resolveDefault(q Query) (Window, bool) {
	half := defaultLow
	if q.Cohort > r.boundary {
		half = defaultHigh
	}
	day, ok := half[q.Weekday]
	if !ok {
		return Window{}, false
	}
	switch q.Slot {
	case model.SlotAM:
		return day.am, true
	case model.SlotPM, model.SlotPM1:
		return day.pm1, true
	case model.SlotPM2:
		if w, ok := day.pm2ByClinic[q.ClinicKey]; ok {
			return w, true
		}
		return day.pm2, true
	}
	return Window{}, false
}
