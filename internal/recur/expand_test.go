package recur

import (
	"testing"
	"time"
)

func eastern(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Canada/Eastern")
	if err != nil {
		t.Fatal(err)
	}
	return loc
}

func TestAdvanceWeeksKeepsWallClockAcrossDSTEnd(t *testing.T) {
	loc := eastern(t)
	// Monday Oct 26 2020, 09:00 EDT; two weeks later DST has ended.
	start := time.Date(2020, time.October, 26, 9, 0, 0, 0, loc)
	adv := AdvanceWeeks(start, 2)

	if adv.Hour() != 9 || adv.Minute() != 0 {
		t.Errorf("advanced time = %v, want 09:00 local", adv)
	}
	if got := adv.Format("2006-01-02"); got != "2020-11-09" {
		t.Errorf("advanced date = %s, want 2020-11-09", got)
	}
	// Offsets differ: 14 days plus the reclaimed DST hour.
	if d := adv.Sub(start); d != 14*24*time.Hour+time.Hour {
		t.Errorf("absolute delta = %v, want 337h", d)
	}
}

func TestAdvanceWeeksKeepsWallClockAcrossDSTStart(t *testing.T) {
	loc := eastern(t)
	// Late fall, standard time; advance far enough to cross into DST.
	start := time.Date(2021, time.February, 22, 16, 30, 0, 0, loc)
	adv := AdvanceWeeks(start, 4) // Mar 22 2021, after the Mar 14 transition

	if adv.Hour() != 16 || adv.Minute() != 30 {
		t.Errorf("advanced time = %v, want 16:30 local", adv)
	}
	// Idempotent under renormalization.
	if again := Rebase(adv, loc); !again.Equal(adv) {
		t.Errorf("rebase(%v) = %v, not a fixed point", adv, again)
	}
}

func TestOccurrencesExcludesExceptions(t *testing.T) {
	loc := eastern(t)
	start := time.Date(2020, time.September, 14, 9, 0, 0, 0, loc)
	fourth := AdvanceWeeks(start, 3)

	tmpl := Template{Start: start, Count: 10, ExDates: []time.Time{fourth}}
	occs := tmpl.Occurrences()

	if len(occs) != 9 {
		t.Fatalf("occurrences = %d, want 9", len(occs))
	}
	prev := time.Time{}
	for _, o := range occs {
		if o.Equal(fourth) {
			t.Errorf("excluded instant %v still present", fourth)
		}
		if !o.After(prev) {
			t.Errorf("occurrences not ascending: %v after %v", o, prev)
		}
		prev = o
	}
}

func TestOccurrencesSingleWhenCountBelowOne(t *testing.T) {
	loc := eastern(t)
	start := time.Date(2020, time.September, 14, 9, 0, 0, 0, loc)
	for _, count := range []int{0, 1, -3} {
		occs := Template{Start: start, Count: count}.Occurrences()
		if len(occs) != 1 || !occs[0].Equal(start) {
			t.Errorf("count %d: occurrences = %v, want just the start", count, occs)
		}
	}
}

func TestRebaseMovesZoneKeepsWallClock(t *testing.T) {
	loc := eastern(t)
	utc := time.Date(2020, time.September, 14, 9, 0, 0, 0, time.UTC)
	got := Rebase(utc, loc)
	if got.Hour() != 9 || got.Location() != loc {
		t.Errorf("Rebase = %v", got)
	}
}
