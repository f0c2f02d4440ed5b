package timetable

import (
	"errors"
	"testing"
	"time"

	"dentcal/internal/model"
)

func newResolver() *Resolver { return New(60) }

func mustResolve(t *testing.T, r *Resolver, q Query) Window {
	t.Helper()
	w, err := r.Resolve(q)
	if err != nil {
		t.Fatalf("Resolve(%+v): %v", q, err)
	}
	return w
}

func minutes(c Clock) int { return c.Hour*60 + c.Minute }

func TestEveryRuleHasPositiveDuration(t *testing.T) {
	r := newResolver()
	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	slots := []model.Slot{model.SlotAM, model.SlotPM, model.SlotPM1, model.SlotPM2}
	clinics := []string{"", "C1", "PMH"}
	// Sweep dates that exercise all three layers.
	dates := []struct {
		month time.Month
		day   int
	}{
		{time.February, 14}, {time.February, 15}, {time.February, 20}, {time.February, 26}, {time.February, 27},
		{time.May, 3}, {time.May, 4}, {time.May, 5}, {time.May, 6}, {time.May, 14},
		{time.October, 12}, {time.March, 1},
	}
	for _, d := range dates {
		for _, wd := range weekdays {
			for _, slot := range slots {
				for _, cohort := range []int{1, 30, 31, 60, 61, 90, 91, 120} {
					for _, ck := range clinics {
						q := Query{Month: d.month, Day: d.day, Weekday: wd, Slot: slot, Cohort: cohort, ClinicKey: ck}
						w, err := r.Resolve(q)
						if err != nil {
							t.Fatalf("Resolve(%+v): %v", q, err)
						}
						if minutes(w.End) <= minutes(w.Start) {
							t.Errorf("Resolve(%+v) = %v-%v, not a positive interval", q, w.Start, w.End)
						}
					}
				}
			}
		}
	}
}

func TestCohortBoundaryIsSixtyInclusive(t *testing.T) {
	r := newResolver()
	// Default table: a regular Tuesday AM differs across the boundary.
	base := Query{Month: time.October, Day: 6, Weekday: time.Tuesday, Slot: model.SlotAM}

	low := base
	low.Cohort = 60
	high := base
	high.Cohort = 61

	wLow := mustResolve(t, r, low)
	wHigh := mustResolve(t, r, high)
	if wLow == wHigh {
		t.Fatalf("cohorts 60 and 61 resolved identically (%v); boundary must be <=60 vs >60", wLow)
	}
	if got, want := wLow.Start, (Clock{8, 0}); got != want {
		t.Errorf("cohort 60 Tuesday AM start = %v, want %v", got, want)
	}
	if got, want := wHigh.Start, (Clock{9, 0}); got != want {
		t.Errorf("cohort 61 Tuesday AM start = %v, want %v", got, want)
	}

	// Term-end table: May 3 Monday splits on the same boundary.
	low = Query{Month: time.May, Day: 3, Weekday: time.Monday, Slot: model.SlotAM, Cohort: 60}
	high = low
	high.Cohort = 61
	if mustResolve(t, r, low) == mustResolve(t, r, high) {
		t.Error("term-end May 3 Monday AM identical for cohorts 60 and 61")
	}
}

func TestScreeningWindowBoundsInclusive(t *testing.T) {
	r := newResolver()
	q := Query{Month: time.February, Weekday: time.Thursday, Slot: model.SlotAM, Cohort: 10}

	// Thursday AM for the first quartile is 8:30 only inside the window;
	// the default week has Thursday AM at 9:00.
	for _, day := range []int{15, 26} {
		q.Day = day
		if got := mustResolve(t, r, q).Start; got != (Clock{8, 30}) {
			t.Errorf("Feb %d inside screening window: start = %v, want 08:30", day, got)
		}
	}
	for _, day := range []int{14, 27} {
		q.Day = day
		if got := mustResolve(t, r, q).Start; got != (Clock{9, 0}) {
			t.Errorf("Feb %d outside screening window: start = %v, want 09:00", day, got)
		}
	}
}

func TestScreeningOnlyCoversTuesdayThursday(t *testing.T) {
	r := newResolver()
	// A Monday inside the February window falls through to the default week.
	q := Query{Month: time.February, Day: 16, Weekday: time.Monday, Slot: model.SlotAM, Cohort: 5}
	if got := mustResolve(t, r, q); got != at(9, 0, 12, 0) {
		t.Errorf("screening-window Monday = %v, want default 09:00-12:00", got)
	}
}

func TestScreeningQuartiles(t *testing.T) {
	r := newResolver()
	q := Query{Month: time.February, Day: 18, Weekday: time.Tuesday, Slot: model.SlotPM1}
	wantStart := map[int]Clock{
		30:  {13, 0},
		60:  {13, 0},
		90:  {13, 0},
		91:  {12, 30},
		120: {12, 30},
	}
	for cohort, want := range wantStart {
		q.Cohort = cohort
		if got := mustResolve(t, r, q).Start; got != want {
			t.Errorf("cohort %d screening Tuesday PM1 start = %v, want %v", cohort, got, want)
		}
	}
}

func TestTermEndLayers(t *testing.T) {
	r := newResolver()

	// May 3-4, low half, Monday: the afternoon does not split; PM1 and PM2
	// both land in the single afternoon block.
	for _, slot := range []model.Slot{model.SlotPM, model.SlotPM1, model.SlotPM2} {
		q := Query{Month: time.May, Day: 3, Weekday: time.Monday, Slot: slot, Cohort: 12}
		if got := mustResolve(t, r, q); got != at(13, 0, 16, 0) {
			t.Errorf("May 3 Monday %s = %v, want 13:00-16:00", slot, got)
		}
	}

	// May 5 is flat across cohorts and weekdays.
	for _, cohort := range []int{1, 120} {
		q := Query{Month: time.May, Day: 5, Weekday: time.Wednesday, Slot: model.SlotPM2, Cohort: cohort}
		if got := mustResolve(t, r, q); got != at(16, 30, 19, 0) {
			t.Errorf("May 5 PM2 cohort %d = %v, want 16:30-19:00", cohort, got)
		}
	}

	// May 6-14 runs two slots; afternoon catch-all.
	q := Query{Month: time.May, Day: 10, Weekday: time.Friday, Slot: model.SlotPM, Cohort: 77}
	if got := mustResolve(t, r, q); got != at(13, 0, 16, 0) {
		t.Errorf("May 10 PM = %v, want 13:00-16:00", got)
	}

	// Late May falls back to the default week.
	q = Query{Month: time.May, Day: 24, Weekday: time.Friday, Slot: model.SlotAM, Cohort: 77}
	if got := mustResolve(t, r, q); got != at(9, 0, 12, 0) {
		t.Errorf("May 24 Friday AM = %v, want default 09:00-12:00", got)
	}
}

func TestHospitalRotationSecondAfternoon(t *testing.T) {
	r := newResolver()
	q := Query{Month: time.November, Day: 2, Weekday: time.Monday, Slot: model.SlotPM2, Cohort: 40}

	q.ClinicKey = "AG"
	if got := mustResolve(t, r, q); got != at(16, 30, 19, 0) {
		t.Errorf("Monday PM2 AG = %v, want 16:30-19:00", got)
	}
	q.ClinicKey = "PMH"
	if got := mustResolve(t, r, q); got != at(16, 30, 19, 30) {
		t.Errorf("Monday PM2 PMH = %v, want 16:30-19:30", got)
	}
}

func TestNoRuleIsAnError(t *testing.T) {
	r := newResolver()
	q := Query{Month: time.October, Day: 10, Weekday: time.Saturday, Slot: model.SlotAM, Cohort: 3}
	_, err := r.Resolve(q)
	var nre *NoRuleError
	if !errors.As(err, &nre) {
		t.Fatalf("Resolve on Saturday: err = %v, want *NoRuleError", err)
	}
	if nre.Query.Weekday != time.Saturday {
		t.Errorf("NoRuleError query = %+v, want the unmatched combination", nre.Query)
	}
}

func TestWindowOn(t *testing.T) {
	loc, err := time.LoadLocation("Canada/Eastern")
	if err != nil {
		t.Fatal(err)
	}
	start, end := at(9, 0, 12, 0).On(2020, time.September, 14, loc)
	if start.Hour() != 9 || start.Location() != loc {
		t.Errorf("start = %v", start)
	}
	if !end.After(start) {
		t.Errorf("end %v not after start %v", end, start)
	}
}
