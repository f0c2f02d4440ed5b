package schedule

import (
	"fmt"
	"strings"
	"time"

	"dentcal/internal/log"
	"dentcal/internal/model"
	"dentcal/internal/timetable"
)

// Grid is the parsed workbook as the indexer sees it: trimmed cell strings
// plus date-typed access for the date column. The sheet adapter implements
// it; the indexer never mutates it.
type Grid interface {
	Cell(row, col int) string
	Date(row, col int) (time.Time, error)
}

// Sessions maps a session start instant (unix seconds) to the resolved
// Session for one cohort.
type Sessions map[int64]model.Session

// Lookup returns the session starting at t, if any.
func (s Sessions) Lookup(t time.Time) (model.Session, bool) {
	sess, ok := s[t.Unix()]
	return sess, ok
}

// Index holds the per-cohort session lookups, keyed by cohort id.
type Index map[int]Sessions

var weekdayLabels = map[string]time.Weekday{
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
	"Sun": time.Sunday,
}

// BuildIndex walks every (cohort column, session row) cell of the workbook
// and resolves it into a Session. A timetable resolution miss is fatal: it
// means the sheet holds a session the published timetable does not cover,
// and silently inventing a time for it would corrupt every downstream
// calendar.
func BuildIndex(g Grid, layout Layout, cat Catalog, res *timetable.Resolver, loc *time.Location) (Index, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	rows := layout.SessionRows()
	cols := layout.CohortColumns()
	idx := make(Index, len(cols))

	for i, col := range cols {
		cohort := i + 1
		sessions := make(Sessions, len(rows))

		for _, row := range rows {
			slot, err := readSlot(g, layout, row)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}

			slot.ClinicKey = strings.TrimSpace(g.Cell(row, col))
			w, err := res.Resolve(queryFor(slot, cohort))
			if err != nil {
				return nil, fmt.Errorf("row %d cohort %d: %w", row, cohort, err)
			}

			start, end := w.On(slot.Date.Year(), slot.Date.Month(), slot.Date.Day(), loc)
			sessions[start.Unix()] = cat.Session(slot.ClinicKey, cohort, start, end)
		}

		idx[cohort] = sessions
	}

	log.Info("schedule indexed", "cohorts", len(idx), "sessions_per_cohort", len(rows))
	return idx, nil
}

// queryFor maps one cohort's sheet entry to a timetable query.
func queryFor(s model.ScheduleSlot, cohort int) timetable.Query {
	return timetable.Query{
		Month:     s.Date.Month(),
		Day:       s.Date.Day(),
		Weekday:   s.Weekday,
		Slot:      s.Slot,
		Cohort:    cohort,
		ClinicKey: s.ClinicKey,
	}
}

// readSlot reads the shared leading columns of one session row.
func readSlot(g Grid, layout Layout, row int) (model.ScheduleSlot, error) {
	label := strings.TrimSpace(g.Cell(row, layout.WeekdayCol))
	weekday, ok := weekdayLabels[label]
	if !ok {
		return model.ScheduleSlot{}, fmt.Errorf("unknown weekday label %q", label)
	}

	date, err := g.Date(row, layout.DateCol)
	if err != nil {
		return model.ScheduleSlot{}, fmt.Errorf("bad date cell: %w", err)
	}
	if date.Weekday() != weekday {
		// The sheet is hand-maintained; trust the date, note the label.
		log.Debug("weekday label disagrees with date", "row", row, "label", label, "date", date.Format("2006-01-02"))
	}

	slot, err := model.ParseSlot(g.Cell(row, layout.SlotCol))
	if err != nil {
		return model.ScheduleSlot{}, err
	}

	return model.ScheduleSlot{Weekday: weekday, Date: date, Slot: slot}, nil
}
