package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	ical "github.com/arran4/golang-ical"
	"golang.org/x/sync/errgroup"

	"dentcal/internal/config"
	"dentcal/internal/ics"
	"dentcal/internal/log"
	"dentcal/internal/recur"
	"dentcal/internal/schedule"
)

// filenamePrefixLen caps the source calendar's base name in output filenames.
const filenamePrefixLen = 25

// Builder assembles one output calendar per cohort from the shared read-only
// inputs: the parsed master calendar and the per-cohort session index.
type Builder struct {
	cfg    *config.Config
	source *ics.Calendar
	index  schedule.Index
	prefix string

	studyTimeName string
	facultyName   string
}

// Result summarizes one run.
type Result struct {
	Built  []int
	Failed map[int]error
}

// New creates a Builder. calendarPath is the master calendar's path, used
// only to derive output filenames.
func New(cfg *config.Config, cat schedule.Catalog, index schedule.Index, source *ics.Calendar, calendarPath string) *Builder {
	base := filepath.Base(calendarPath)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if len(base) > filenamePrefixLen {
		base = base[:filenamePrefixLen]
	}
	return &Builder{
		cfg:           cfg,
		source:        source,
		index:         index,
		prefix:        base,
		studyTimeName: cat.Lookup(schedule.KeyStudyTime).Name,
		facultyName:   cat.Lookup(schedule.KeyFacultyTimetable).Name,
	}
}

// Run builds calendars for every requested cohort. Cohorts run on a bounded
// worker pool; a failing cohort is recorded and never stops the others. The
// returned error is non-nil only when not a single cohort succeeded.
func (b *Builder) Run() (Result, error) {
	res := Result{Failed: make(map[int]error)}

	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return res, err
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(b.cfg.Workers)

	for id := b.cfg.Cohorts.Start; id <= b.cfg.Cohorts.End; id++ {
		if b.cfg.SkipCohort(id) {
			continue
		}
		id := id
		g.Go(func() error {
			err := b.buildCohort(id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed[id] = err
				log.Error("cohort build failed", err, "cohort", id)
				return nil
			}
			res.Built = append(res.Built, id)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures are in res.Failed

	log.Info("build finished", "built", len(res.Built), "failed", len(res.Failed))
	if len(res.Built) == 0 {
		return res, fmt.Errorf("build: no cohort in %d..%d produced a calendar",
			b.cfg.Cohorts.Start, b.cfg.Cohorts.End)
	}
	return res, nil
}

// buildCohort assembles and writes one cohort's calendar. The UID sequence
// is created here so identifiers restart from the base for every calendar.
func (b *Builder) buildCohort(cohort int) error {
	sessions, ok := b.index[cohort]
	if !ok {
		return fmt.Errorf("build: cohort %d is not in the schedule index", cohort)
	}

	uids := newUIDSeq()
	cal := ics.NewCalendar(b.source.ProdID, b.source.Version)

	for _, ev := range b.source.Events {
		if b.isPlaceholder(ev.Summary) {
			if err := b.expandPlaceholder(cohort, ev, sessions, uids, cal); err != nil {
				return err
			}
			continue
		}
		if b.cfg.Mode == config.ModeClinics {
			continue
		}
		cal.AddVEvent(passThrough(ev, uids))
	}

	path := filepath.Join(b.cfg.OutputDir, fmt.Sprintf("%s - %d.ics", b.prefix, cohort))
	if err := ics.WriteFile(path, cal); err != nil {
		return err
	}
	log.Debug("cohort calendar written", "cohort", cohort, "path", path)
	return nil
}

func (b *Builder) expandPlaceholder(cohort int, ev ics.Event, sessions schedule.Sessions, uids *uidSeq, cal *ical.Calendar) error {
	if !ev.Weekly {
		return fmt.Errorf("build: placeholder %q at %s has a non-weekly recurrence",
			ev.Summary, ev.Start)
	}
	tmpl := recur.Template{Start: ev.Start, Count: ev.Count, ExDates: ev.ExDates}
	for _, occ := range tmpl.Occurrences() {
		ve, err := b.mergeOccurrence(cohort, occ, sessions, ev, uids)
		if err != nil {
			return err
		}
		if ve != nil {
			cal.AddVEvent(ve)
		}
	}
	return nil
}

func (b *Builder) isPlaceholder(summary string) bool {
	for _, marker := range b.cfg.PlaceholderSummaries {
		if strings.Contains(summary, marker) {
			return true
		}
	}
	return false
}
