package schedule

import "fmt"

// The rotation workbook has a fixed, hand-maintained shape. Rather than
// recomputing row positions arithmetically, the shape is written out here as
// schema data: each calendar period lists where its week blocks start and
// which rows inside a block carry sessions. Row and column numbers are
// zero-based positions in the parsed sheet grid.

// Period is one stretch of the year with a uniform week shape.
type Period struct {
	Name string `yaml:"name"`
	// BlockStarts are the grid rows where each week block begins.
	BlockStarts []int `yaml:"block_starts"`
	// SlotOffsets are the session-carrying rows relative to a block start.
	// Blank separator rows between weekdays are simply absent from the list.
	SlotOffsets []int `yaml:"slot_offsets"`
}

// ColumnBlock is one cohort block: a section column followed by a contiguous
// run of per-student columns.
type ColumnBlock struct {
	Section int `yaml:"section"`
	First   int `yaml:"first"`
	Last    int `yaml:"last"`
}

// Layout is the full positional schema of the workbook.
type Layout struct {
	// WeekdayCol/DateCol/SlotCol are the shared leading columns every
	// session row reads its weekday label, date and slot code from.
	WeekdayCol int `yaml:"weekday_col"`
	DateCol    int `yaml:"date_col"`
	SlotCol    int `yaml:"slot_col"`

	Periods []Period      `yaml:"periods"`
	Columns []ColumnBlock `yaml:"columns"`
}

// SessionRows flattens the periods into the ordered list of grid rows that
// hold sessions.
func (l Layout) SessionRows() []int {
	var rows []int
	for _, p := range l.Periods {
		for _, start := range p.BlockStarts {
			for _, off := range p.SlotOffsets {
				rows = append(rows, start+off)
			}
		}
	}
	return rows
}

// CohortColumns flattens the column blocks into the ordered list of grid
// columns; position i holds cohort id i+1.
func (l Layout) CohortColumns() []int {
	var cols []int
	for _, b := range l.Columns {
		cols = append(cols, b.Section)
		for c := b.First; c <= b.Last; c++ {
			cols = append(cols, c)
		}
	}
	return cols
}

// Validate checks the schema for obvious nonsense before indexing runs.
func (l Layout) Validate() error {
	if len(l.Periods) == 0 {
		return fmt.Errorf("layout: no periods")
	}
	for _, p := range l.Periods {
		if len(p.BlockStarts) == 0 || len(p.SlotOffsets) == 0 {
			return fmt.Errorf("layout: period %q is empty", p.Name)
		}
		for _, s := range p.BlockStarts {
			if s < 0 {
				return fmt.Errorf("layout: period %q has negative block start %d", p.Name, s)
			}
		}
		for _, o := range p.SlotOffsets {
			if o < 0 {
				return fmt.Errorf("layout: period %q has negative slot offset %d", p.Name, o)
			}
		}
	}
	if len(l.Columns) == 0 {
		return fmt.Errorf("layout: no column blocks")
	}
	for _, b := range l.Columns {
		if b.First > b.Last || b.Section < 0 || b.First < 0 {
			return fmt.Errorf("layout: bad column block %+v", b)
		}
	}
	return nil
}

// DefaultLayout describes the current rotation workbook: four periods with
// different week shapes and six cohort blocks of twenty columns (120 cohorts).
func DefaultLayout() Layout {
	return Layout{
		WeekdayCol: 0,
		DateCol:    1,
		SlotCol:    2,
		Periods: []Period{
			{
				Name: "fall",
				BlockStarts: []int{
					57, 87, 116, 146, 175, 205, 234, 264, 293, 323, 352, 382, 411, 441, 470,
				},
				// Mon-Thu run AM/PM1/PM2; Friday only AM/PM.
				SlotOffsets: []int{0, 1, 2, 4, 5, 6, 8, 9, 10, 12, 13, 14, 16, 17},
			},
			{
				Name: "winter",
				BlockStarts: []int{
					551, 581, 612, 642, 673, 703, 734, 764,
				},
				// All five days carry three sessions.
				SlotOffsets: []int{0, 1, 2, 4, 5, 6, 8, 9, 10, 12, 13, 14, 16, 17, 18},
			},
			{
				Name: "spring",
				BlockStarts: []int{
					820, 851, 881, 912, 942, 973, 1003, 1034, 1064,
				},
				SlotOffsets: []int{0, 1, 2, 4, 5, 6, 8, 9, 10, 12, 13, 14, 16, 17, 18},
			},
			{
				Name:        "final-week",
				BlockStarts: []int{1095},
				// Two sessions per day, one separator row between days.
				SlotOffsets: []int{0, 1, 3, 4, 6, 7, 9, 10, 12, 13},
			},
		},
		Columns: []ColumnBlock{
			{Section: 3, First: 4, Last: 22},
			{Section: 23, First: 24, Last: 42},
			{Section: 43, First: 44, Last: 62},
			{Section: 66, First: 67, Last: 85},
			{Section: 86, First: 87, Last: 105},
			{Section: 106, First: 107, Last: 125},
		},
	}
}
