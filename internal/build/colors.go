package build

import (
	"dentcal/internal/model"
	"dentcal/internal/schedule"
)

// nonClinicCategories recolors known non-clinic events by their exact
// summary. Several summaries carry trailing spaces in the source calendar;
// they are preserved on purpose.
var nonClinicCategories = buildNonClinicCategories()

func buildNonClinicCategories() map[string]model.Category {
	m := make(map[string]model.Category)
	add := func(cat model.Category, summaries ...string) {
		for _, s := range summaries {
			m[s] = cat
		}
	}

	add(schedule.CategoryYellow,
		"Lunch",
		"Lunch ",
	)
	add(schedule.CategoryGreen,
		"Student Vendor Fair",
		"Graduation Day",
		"Winter Holidays ",
		"Civic Holiday",
		"CDSC Conference - Classes and Clinics Cancelled ",
		"ODA Annual Spring Meeting ",
		"Fall Study Day - Classes and Clinics Cancelled ",
		"Canada Day - University Closed",
		"Classes begin",
		"Reading Week",
		"Clinics close",
		"Summer session begins",
		"Classes end",
		"Classes end and clinics close",
		"Orientation Week",
		"Thanksgiving Day",
		"Labour day",
		"Family Day",
		"Victoria Day",
		"Good Friday",
		"Research Day",
		"Labour Day (University Closed)",
		"Thanksgiving Day (University Closed)",
		"Fall Study Day",
		"Winter Holidays (University Closed)",
		"Family Day (University Closed)",
		"Study Day for NDEB Examinations",
		"Good Friday (University Closed)",
	)
	add(schedule.CategoryPurple,
		"Oral Medicine and Pathology - Seminars (14) - DEN315Y1",
		"Dean's Welcome Back!",
		"IPE Orientation",
	)
	add(schedule.CategoryRed,
		"IPC Distribution and Information ",
		"InterProfessional Pain Curriculum ",
		"InterProfessional Pain Curriculum (1)",
	)
	add(schedule.CategoryOrange,
		"Orthodontics Screening",
	)
	add(schedule.CategoryBlue,
		"Dental Public Health (DEN308Y) - Term Test",
		"Psychiatry and Dentistry - Test",
		"Oral Diagnosis & Medicine (DEN356Y) - Term Test",
		"Practice Administration (DEN409Y) - Term Test",
		"Oral Surgery (DEN318Y) - Term Test",
		"Pediatric Dentistry (DEN323Y) - Term Test",
		"Oral Med & Pathology (DEN315Y) ",
		"Prosthodontics (DEN333Y) - Term Test",
		"Oral Radiology (DEN317Y) - Term Test",
		"Anesthesia (DEN301Y) - Term Test",
		"Orthodontics (DEN322Y) - Term Test",
		"Endodontics (DEN303H) - Term Test",
		"Pharmacology (DEN327H) - Term Test",
		"DEN322Y1 Orthodontic - Final Exam",
		"DEN333Y1 Prosthodontics - Final Exam",
		"DEN315Y1 Oral Medicine & Pathology - Final Exam",
		"DEN323Y1 Pediatric Dentistry - Final Exam",
		"DEN336Y1 Restorative Dentistry - Final Exam",
		"Oral Radiology - part 1 - Final Exam",
		"Oral Radiology - part 2 - Final Exam",
		"Oral Radiology - Part 1 & 2 - Final Exam",
		"Anesthesia (DEN301H1) - Final Exam",
		"Pharmacology (DEN327H1) - Final Exam",
		"Endodontics (DEN303H1) - Final Exam",
		"Final Exam Period",
		"Periodontics (DEN324H) - Term Test",
		"Restorative (DEN336Y) - Term Test",
		"DEN318Y1 Oral and Maxillofacial Surgery - Final Exam ",
		"Comprehensive Care - DEN451Y - Term Test",
		"Orthodontics - DEN465Y1 - Term Test",
		"Oral Radiology - DEN459Y1 - Term Test",
		"Oral Surgery - DEN462Y1 - Final Exam",
		"Pediatric Dentistry - DEN468Y - Term Test",
		"Comprehensive Care - DEN451Y - Test",
		"Practice Administration - Test",
		"Endodontics - DEN453Y1 - Term Test",
		"Anesthesia - DEN400H - Final Exam",
		"Oral Examination Period",
	)
	return m
}
