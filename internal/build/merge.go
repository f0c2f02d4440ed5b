package build

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"dentcal/internal/ics"
	"dentcal/internal/schedule"
)

// Properties copied from a placeholder template onto every merged event.
// Everything temporal or descriptive comes from the resolved session instead.
var templateProps = []ical.ComponentProperty{
	"CLASS",
	"CREATED",
	"DTSTAMP",
	"LAST-MODIFIED",
	"PRIORITY",
	"SEQUENCE",
	"TRANSP",
}

// Vendor metadata from the authoring tool, dropped from pass-through events.
var droppedProps = map[string]bool{
	"X-ALT-DESC":                   true,
	"X-MICROSOFT-CDO-BUSYSTATUS":   true,
	"X-MICROSOFT-CDO-IMPORTANCE":   true,
	"X-MICROSOFT-DISALLOW-COUNTER": true,
}

// LookupMissError reports an expanded occurrence with no resolved session:
// the rotation sheet and the master calendar disagree about this cohort.
type LookupMissError struct {
	Cohort int
	At     time.Time
}

func (e *LookupMissError) Error() string {
	return fmt.Sprintf("build: cohort %d has no session at %s", e.Cohort, e.At.Format(time.RFC3339))
}

// mergeOccurrence produces the finished event for one expanded occurrence,
// or nil (no error) when the occurrence is suppressed: a second-afternoon
// slot resolving to open study or faculty time is not a real attendance
// event.
func (b *Builder) mergeOccurrence(cohort int, occ time.Time, sessions schedule.Sessions, tmpl ics.Event, uids *uidSeq) (*ical.VEvent, error) {
	sess, ok := sessions.Lookup(occ)
	if !ok {
		return nil, &LookupMissError{Cohort: cohort, At: occ}
	}

	if occ.Hour() == 16 && occ.Minute() == 30 &&
		(sess.Clinic == b.studyTimeName || sess.Clinic == b.facultyName) {
		return nil, nil
	}

	ve := ical.NewEvent(uids.Next())
	ve.SetProperty(ical.ComponentPropertyCategories, string(sess.Category))
	for _, name := range templateProps {
		if p := tmpl.V.GetProperty(name); p != nil {
			ve.SetProperty(name, p.Value)
		}
	}
	ve.SetProperty(ical.ComponentPropertyDtStart, ics.FormatDateTime(sess.Start))
	ve.SetProperty(ical.ComponentPropertyDtEnd, ics.FormatDateTime(sess.End))
	ve.SetProperty(ical.ComponentPropertyDescription, sess.Description)
	ve.SetProperty(ical.ComponentPropertyLocation, sess.Room)
	ve.SetProperty(ical.ComponentPropertySummary, sess.Clinic)
	return ve, nil
}

// passThrough copies a non-clinic event: fresh UID, recolored category when
// the summary is a known non-clinic event, vendor metadata dropped,
// everything else verbatim.
func passThrough(tmpl ics.Event, uids *uidSeq) *ical.VEvent {
	ve := ical.NewEvent(uids.Next())
	for _, p := range tmpl.V.Properties {
		name := p.IANAToken
		switch {
		case name == string(ical.ComponentPropertyUniqueId):
			// Replaced above.
		case droppedProps[name]:
			// Meaningless outside the authoring tool.
		case name == string(ical.ComponentPropertyCategories):
			if cat, ok := nonClinicCategories[tmpl.Summary]; ok {
				ve.SetProperty(ical.ComponentPropertyCategories, string(cat))
			} else {
				ve.Properties = append(ve.Properties, p)
			}
		default:
			ve.Properties = append(ve.Properties, p)
		}
	}
	return ve
}
