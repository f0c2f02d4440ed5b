package model

import (
	"fmt"
	"strings"
	"time"
)

// Slot identifies one of the daily session windows in the rotation sheet.
// Two-session days use AM/PM; three-session days use AM/PM1/PM2.
type Slot string

const (
	SlotAM  Slot = "AM"
	SlotPM  Slot = "PM"
	SlotPM1 Slot = "PM1"
	SlotPM2 Slot = "PM2"
)

// ParseSlot normalizes a raw sheet cell into a Slot.
func ParseSlot(s string) (Slot, error) {
	switch Slot(strings.ToUpper(strings.TrimSpace(s))) {
	case SlotAM:
		return SlotAM, nil
	case SlotPM:
		return SlotPM, nil
	case SlotPM1:
		return SlotPM1, nil
	case SlotPM2:
		return SlotPM2, nil
	}
	return "", fmt.Errorf("unknown slot code %q", s)
}

// Category is a calendar color category name (e.g. "Orange Category").
// The empty category means "leave uncolored".
type Category string

// Session is one resolved clinical assignment for one cohort. Immutable once
// built; Start and End always carry an explicit location and Start < End.
type Session struct {
	Clinic      string
	Room        string
	Description string
	Start       time.Time
	End         time.Time
	Category    Category
}

// ScheduleSlot is one raw sheet entry for a single cohort column, as read
// during indexing. It only lives for the duration of the indexing pass.
type ScheduleSlot struct {
	Weekday   time.Weekday
	Date      time.Time // midnight, sheet timezone
	Slot      Slot
	ClinicKey string
}
