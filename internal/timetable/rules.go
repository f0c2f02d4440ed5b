package timetable

import (
	"time"

	"dentcal/internal/model"
)

// The literal rule tables. These transcribe the published clinical timetable
// for the year; every window is (start, end) so a rule can never produce an
// inverted interval on its own.

const (
	screeningMonth    = time.February
	screeningFirstDay = 15 // inclusive
	screeningLastDay  = 26 // inclusive

	termEndMonth = time.May
)

// slotWindows maps the slot codes of one rule row to windows. PM1 may be
// absent (nil) on rows where the afternoon does not split. Anything that is
// not AM and not a matched PM1 resolves to rest: the override rows treat
// PM2 (and the legacy bare PM) as "whatever is left of the day".
type slotWindows struct {
	am   Window
	pm1  *Window
	rest Window
}

func (s slotWindows) window(slot model.Slot) Window {
	if slot == model.SlotAM {
		return s.am
	}
	if s.pm1 != nil && slot == model.SlotPM1 {
		return *s.pm1
	}
	return s.rest
}

func at(h1, m1, h2, m2 int) Window {
	return Window{Start: Clock{h1, m1}, End: Clock{h2, m2}}
}

func atp(h1, m1, h2, m2 int) *Window {
	w := at(h1, m1, h2, m2)
	return &w
}

// screeningTable is keyed by cohort quartile (bands of 30 ids), then by
// weekday. Only Tuesday and Thursday shift during the screening window.
var screeningTable = [4]map[time.Weekday]slotWindows{
	{ // cohorts 1-30
		time.Tuesday:  {am: at(9, 0, 12, 0), pm1: atp(13, 0, 16, 0), rest: at(16, 30, 19, 0)},
		time.Thursday: {am: at(8, 30, 11, 30), pm1: atp(13, 0, 16, 0), rest: at(16, 30, 19, 0)},
	},
	{ // cohorts 31-60
		time.Tuesday:  {am: at(9, 0, 12, 0), pm1: atp(13, 0, 16, 0), rest: at(16, 30, 19, 0)},
		time.Thursday: {am: at(9, 0, 12, 0), pm1: atp(12, 30, 15, 30), rest: at(16, 30, 19, 0)},
	},
	{ // cohorts 61-90
		time.Tuesday:  {am: at(8, 30, 11, 30), pm1: atp(13, 0, 16, 0), rest: at(16, 30, 19, 0)},
		time.Thursday: {am: at(9, 0, 12, 0), pm1: atp(13, 0, 16, 0), rest: at(16, 30, 19, 0)},
	},
	{ // cohorts 91-120
		time.Tuesday:  {am: at(9, 0, 12, 0), pm1: atp(12, 30, 15, 30), rest: at(16, 30, 19, 0)},
		time.Thursday: {am: at(9, 0, 12, 0), pm1: atp(13, 0, 16, 0), rest: at(16, 30, 19, 0)},
	},
}

// termEndEarly covers May 3-4, split Monday vs the other weekday in play.
type termEndEarly struct {
	monday slotWindows
	rest   slotWindows
}

var termEndEarlyLow = termEndEarly{
	monday: slotWindows{am: at(9, 0, 12, 0), rest: at(13, 0, 16, 0)},
	rest:   slotWindows{am: at(8, 30, 11, 30), rest: at(12, 30, 15, 30)},
}

var termEndEarlyHigh = termEndEarly{
	monday: slotWindows{am: at(8, 30, 11, 30), pm1: atp(12, 30, 15, 30), rest: at(16, 30, 19, 0)},
	rest:   slotWindows{am: at(9, 0, 12, 0), rest: at(13, 0, 16, 0)},
}

// May 5 runs all three slots at the same times for everyone.
var termEndDay5 = slotWindows{am: at(9, 0, 12, 0), pm1: atp(13, 0, 16, 0), rest: at(16, 30, 19, 0)}

// May 6-14: two slots only.
var termEndFinal = slotWindows{am: at(9, 0, 12, 0), rest: at(13, 0, 16, 0)}

// daySlots is one weekday row of the default table. pm2ByClinic overrides the
// second-afternoon window for specific clinic keys; hospital rotations run
// 16:30-19:30 where the house slot ends at 19:00.
type daySlots struct {
	am          Window
	pm1         Window
	pm2         Window
	pm2ByClinic map[string]Window
}

var defaultLow = map[time.Weekday]daySlots{
	time.Monday: {
		am: at(9, 0, 12, 0), pm1: at(13, 0, 16, 0), pm2: at(16, 30, 19, 0),
		pm2ByClinic: map[string]Window{"PMH": at(16, 30, 19, 30)},
	},
	time.Tuesday: {am: at(8, 0, 10, 30), pm1: at(11, 30, 14, 0), pm2: at(15, 0, 17, 30)},
	time.Wednesday: {
		am: at(9, 0, 12, 0), pm1: at(12, 30, 15, 30), pm2: at(16, 30, 19, 0),
		pm2ByClinic: map[string]Window{"PMH": at(16, 30, 19, 30)},
	},
	time.Thursday: {am: at(9, 0, 12, 0), pm1: at(13, 0, 16, 0), pm2: at(16, 30, 19, 30)},
	time.Friday:   {am: at(8, 30, 11, 30), pm1: at(12, 30, 15, 30), pm2: at(16, 30, 19, 0)},
}

var defaultHigh = map[time.Weekday]daySlots{
	time.Monday: {
		am: at(8, 30, 11, 30), pm1: at(12, 30, 15, 30), pm2: at(16, 30, 19, 0),
		pm2ByClinic: map[string]Window{"PMH": at(16, 30, 19, 30)},
	},
	time.Tuesday: {am: at(9, 0, 12, 0), pm1: at(13, 0, 16, 0), pm2: at(16, 30, 19, 30)},
	time.Wednesday: {
		am: at(8, 30, 11, 30), pm1: at(13, 0, 16, 0), pm2: at(16, 30, 19, 0),
		pm2ByClinic: map[string]Window{"PMH": at(16, 30, 19, 30)},
	},
	time.Thursday: {am: at(8, 0, 10, 30), pm1: at(11, 30, 14, 0), pm2: at(15, 0, 17, 30)},
	time.Friday:   {am: at(9, 0, 12, 0), pm1: at(13, 0, 16, 0), pm2: at(16, 30, 19, 0)},
}
