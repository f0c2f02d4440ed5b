// Package recur expands weekly count-based recurrences. This is the only
// recurrence pattern the master calendar uses, and the one property that
// matters is that "one week later" means the same local wall-clock time one
// week later, including across daylight-saving transitions.
package recur

import "time"

// Template is one recurring placeholder: the first start, how many weekly
// occurrences the rule declares, and the instants explicitly skipped.
// Read-only; expansion never mutates it.
type Template struct {
	Start   time.Time
	Count   int
	ExDates []time.Time
}

// AdvanceWeeks returns t moved forward by the given number of whole weeks,
// keeping the local wall-clock time in t's zone. Rebuilding the time from
// calendar fields lets the zone database renormalize the UTC offset, so a
// 09:00 start stays a 09:00 start on whichever side of a DST jump it lands;
// the result is a single unambiguous local time.
func AdvanceWeeks(t time.Time, weeks int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+7*weeks,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Rebase re-anchors t's wall-clock fields in loc. Calendar parsers hand back
// times in whatever zone the file declared; the engine compares and indexes
// everything in one canonical zone.
func Rebase(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, loc)
}

// Occurrences expands the template into its concrete occurrence instants in
// ascending order: the start advanced by 0..Count-1 weeks, minus any instant
// in the exception set. A count below 1 is treated as a single occurrence.
func (t Template) Occurrences() []time.Time {
	count := t.Count
	if count < 1 {
		count = 1
	}
	out := make([]time.Time, 0, count)
	for week := 0; week < count; week++ {
		occ := AdvanceWeeks(t.Start, week)
		if t.excluded(occ) {
			continue
		}
		out = append(out, occ)
	}
	return out
}

func (t Template) excluded(occ time.Time) bool {
	for _, ex := range t.ExDates {
		if ex.Equal(occ) {
			return true
		}
	}
	return false
}
