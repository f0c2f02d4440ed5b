package schedule

import (
	"time"

	"dentcal/internal/model"
)

// Color category names understood by the target calendar client.
const (
	CategoryLectures model.Category = "Lectures"
	CategoryOrange   model.Category = "Orange Category"
	CategoryRed      model.Category = "Red Category"
	CategoryGreen    model.Category = "Green Category"
	CategoryPurple   model.Category = "Purple Category"
	CategoryBlue     model.Category = "Blue Category"
	CategoryYellow   model.Category = "Yellow Category"
)

// Clinic keys the engine itself has to know about: the suppression rule
// matches on the Study Time / Faculty Timetable display names, and hospital
// rotations diverge in the timetable's second-afternoon entries.
const (
	KeyStudyTime        = "ST"
	KeyFacultyTimetable = "FT"
	KeyPrincessMargaret = "PMH"
)

// TextFunc resolves a room or description for a concrete assignment. Most
// entries are fixed strings; a few genuinely depend on the cohort or on when
// the session starts (arrival notes differ by weekday and am/pm).
type TextFunc func(cohort int, start time.Time) string

func fixed(s string) TextFunc {
	return func(int, time.Time) string { return s }
}

var empty = fixed("")

// Entry describes one clinic key: display name, room/description strategies
// and the color category its events get.
type Entry struct {
	Name        string
	Room        TextFunc
	Description TextFunc
	Category    model.Category
}

// Catalog maps clinic key strings to entries.
type Catalog map[string]Entry

// Lookup returns the entry for key. Unknown keys are not an error: the sheet
// grows ad-hoc codes mid-year, so they fall back to the literal key as the
// display name with no room, description or category.
func (c Catalog) Lookup(key string) Entry {
	if e, ok := c[key]; ok {
		return e
	}
	return Entry{Name: key, Room: empty, Description: empty}
}

// Session builds an immutable Session for one resolved assignment.
func (c Catalog) Session(key string, cohort int, start, end time.Time) model.Session {
	e := c.Lookup(key)
	return model.Session{
		Clinic:      e.Name,
		Room:        e.Room(cohort, start),
		Description: e.Description(cohort, start),
		Start:       start,
		End:         end,
		Category:    e.Category,
	}
}

func noon(t time.Time) bool {
	return t.Hour() >= 12
}

// gradPerioArrival: assisting shifts in Grad Perio have their own arrival
// times, afternoon flat and mornings varying by weekday.
func gradPerioArrival(_ int, start time.Time) string {
	if noon(start) {
		return "Arrive by 2:00 PM"
	}
	switch start.Weekday() {
	case time.Monday:
		return "Arrive by 9:30 AM"
	case time.Tuesday:
		return "Arrive by 10:00 AM"
	case time.Wednesday, time.Thursday:
		return "Arrive by 8:30 AM"
	}
	return "Arrive by 10:00 AM"
}

func gradOralSurgeryArrival(_ int, start time.Time) string {
	if noon(start) {
		return "Arrive by 8:45 AM"
	}
	return "Arrive by 12:45 PM"
}

// DefaultCatalog is the production clinic key set for the current rotation
// year.
func DefaultCatalog() Catalog {
	return Catalog{
		KeyFacultyTimetable: {Name: "Faculty Timetable", Room: fixed("NA"), Description: empty, Category: CategoryLectures},
		"C1":                {Name: "CCP - Clinic 1", Room: fixed("Clinic 1"), Description: empty, Category: CategoryOrange},
		"C2":                {Name: "CCP - Clinic 2", Room: fixed("Clinic 2"), Description: empty, Category: CategoryOrange},
		"CH":                {Name: "Pediatric Clinic", Room: fixed("Pediatric Clinic - 1st floor"), Description: empty, Category: CategoryOrange},
		"EM":                {Name: "Emergency Clinic", Room: fixed("Emergency Clinic - 2nd floor"), Description: empty, Category: CategoryOrange},
		"OD":                {Name: "Oral Diagnosis Clinic", Room: fixed("Oral Diagnosis Clinic - 2nd floor"), Description: empty, Category: CategoryOrange},
		"OR":                {Name: "Orthodontics Clinic", Room: fixed("481 University Avenue - 4th floor"), Description: empty, Category: CategoryOrange},
		"RA":                {Name: "Radiology Clinic", Room: fixed("Radiology Clinic - 2nd floor"), Description: empty, Category: CategoryOrange},
		"SC":                {Name: "Oral Surgery Clinic", Room: fixed("Oral Surgery Clinic - 1st floor"), Description: empty, Category: CategoryOrange},
		"HR":                {Name: "Hospital Rotations", Room: fixed("See Clinic Office Schedule"), Description: empty, Category: CategoryRed},
		"GB":                {Name: "George Brown Health Sciences", Room: fixed("51 Dockside Dr. - (#6 Bus South on Bay St.)"), Description: empty, Category: CategoryRed},
		"CA":                {Name: "CAMH Rotation", Room: fixed("100 Stokes St."), Description: fixed("Begins at 9:15 AM and 1:15 PM"), Category: CategoryRed},
		"Ge":                {Name: "Assist in Grad Endo", Room: fixed("Grad Endo Clinics - 2nd floor"), Description: empty, Category: CategoryRed},
		"Go":                {Name: "Assist in Oral Reconstruction", Room: fixed("Grad Perio/ORC Clinics - 3rd floor"), Description: empty, Category: CategoryRed},
		"Gp":                {Name: "Assist in Grad Perio", Room: fixed("Grad Perio/ORC Clinics - 3rd floor"), Description: gradPerioArrival, Category: CategoryRed},
		"Gpr":               {Name: "Assist in Grad Prostho", Room: fixed("Grad Prostho Clinics - 3rd floor"), Description: empty, Category: CategoryRed},
		"SM":                {Name: "St. Michael's Hospital Rotation", Room: fixed("80 Bond St."), Description: fixed("Register at 8 AM. Placement begins at 8:30 AM"), Category: CategoryRed},
		KeyStudyTime:        {Name: "Study Time", Room: empty, Description: empty, Category: CategoryGreen},
		"ORL":               {Name: "Orthodontics Lab", Room: fixed("Senior Lab"), Description: empty, Category: CategoryPurple},
		"PS":                {Name: "Periodontic Suturing", Room: fixed("Lab 4"), Description: fixed("Reminder - Bring a banana to suture"), Category: CategoryPurple},
		"PSC":               {Name: "Pediatric Surgicentre", Room: fixed("Adult Anaesthesia Clinic - Room 256"), Description: empty, Category: CategoryRed},
		"CC":                {Name: "Restorative CAD/CAM Crowns", Room: fixed("Clinic 2"), Description: empty, Category: CategoryRed},
		"ENM":               {Name: "Endodontics of Molar", Room: fixed("Clinic 1"), Description: empty, Category: CategoryPurple},
		"R/1":               {Name: "Restorative Test 1 - Practice", Room: fixed("Clinic 2"), Description: empty, Category: CategoryBlue},
		"R/2":               {Name: "Restorative Test 2 - Intracoronal", Room: fixed("Clinic 2"), Description: empty, Category: CategoryBlue},
		"R/3":               {Name: "Restorative Test 3 - Crown", Room: fixed("Clinic 2"), Description: empty, Category: CategoryBlue},
		"R/4":               {Name: "Restorative Test 4 - Anterior Resin", Room: fixed("Clinic 2"), Description: empty, Category: CategoryBlue},
		"AN3":               {Name: "Anaesthesia Clinic (Nitrous Oxide)", Room: fixed("Clinic 1"), Description: empty, Category: CategoryOrange},
		"IP":                {Name: "IPE - Pain", Room: fixed("External Placements - See Schedule from IPE Co-ordinator"), Description: empty, Category: CategoryRed},
		"LT":                {Name: "IPE - Lindberg Homburger Modent Dental Studies Ltd.", Room: fixed("1407 Dufferin Street, Toronto, ON  M6H 4C7"), Description: empty, Category: CategoryRed},
		"TPS":               {Name: "IPE - Toronto Paramedic Services", Room: fixed("4330 Dufferin St, North York, ON M3H 5R9"), Description: empty, Category: CategoryRed},
		"PB":                {Name: "Patient Based Learning Seminar", Room: fixed("Online - Synchronous"), Description: empty, Category: CategoryPurple},
		"P/F":               {Name: "Prosthodontics - Fixed Prostho Seminar", Room: fixed("See Course Syllabus"), Description: empty, Category: CategoryPurple},
		"P1":                {Name: "Preventative Seminar #1", Room: fixed("See Course Syllabus"), Description: empty, Category: CategoryPurple},
		"P2":                {Name: "Preventative Seminar #2", Room: fixed("See Course Syllabus"), Description: empty, Category: CategoryPurple},
		"ORC":               {Name: "Oral Reconstruction Clinic", Room: fixed("See Course Syllabus"), Description: empty, Category: CategoryRed},
		KeyPrincessMargaret: {Name: "Princess Margaret Hospital Rotation", Room: fixed("610 University Ave"), Description: fixed("Placement from 4:30 PM - 7:30 PM"), Category: CategoryRed},
		"ET":                {Name: "Ethics Seminar", Room: fixed("Online - Synchronous"), Description: empty, Category: CategoryPurple},
		"RS":                {Name: "Radiology Seminar", Room: fixed("Online - Synchronous"), Description: empty, Category: CategoryPurple},
		"AN4":               {Name: "Anaesthesia Seminar", Room: fixed("Online - Synchronous, Room 360"), Description: empty, Category: CategoryPurple},
		"ORS":               {Name: "Orthodontics Seminar", Room: fixed("Online - Synchronous"), Description: empty, Category: CategoryPurple},
		"OX":                {Name: "Orthodontics Oral Exam", Room: fixed("Online - Synchronous"), Description: empty, Category: CategoryBlue},
		"CHS":               {Name: "Pediatric Clinic Seminar", Room: fixed("Online - Synchronous"), Description: empty, Category: CategoryPurple},
		"MS":                {Name: "Mount Sinai Rotation", Room: fixed("600 University Ave - 4th floor"), Description: empty, Category: CategoryRed},
		"AG":                {Name: "AGP", Room: fixed("Closed Operatory"), Description: empty, Category: CategoryRed},
		"AG-A":              {Name: "AGP Assisting", Room: fixed("Closed Operatory"), Description: empty, Category: CategoryRed},
		"IPE":               {Name: "Grad Oral Surgery IPE", Room: fixed("Oral Surgery Clinic - 1st floor"), Description: gradOralSurgeryArrival, Category: CategoryRed},
	}
}
