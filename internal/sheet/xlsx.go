// Package sheet reads the rotation workbook into a plain string grid so the
// rest of the engine never touches spreadsheet types.
package sheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"dentcal/internal/log"
)

// Grid is the first worksheet of the workbook: rows of trimmed cell strings,
// with the header row stripped so positions line up with the layout schema.
type Grid struct {
	rows [][]string
	loc  *time.Location
}

// Open reads the first sheet of the workbook at path. Date cells are parsed
// lazily, in loc.
func Open(path string, loc *time.Location) (*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Error("sheet: close failed", cerr, "file", path)
		}
	}()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("sheet: workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet: worksheet %q is empty", name)
	}

	log.Info("workbook loaded", "file", path, "sheet", name, "rows", len(rows)-1)
	return &Grid{rows: rows[1:], loc: loc}, nil
}

// Rows reports the number of data rows.
func (g *Grid) Rows() int { return len(g.rows) }

// Cell returns the trimmed cell value; out-of-range positions are empty.
// Worksheet rows are ragged: trailing blank cells are not materialized.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.rows) {
		return ""
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

var dateLayouts = []string{
	"2-Jan-06",
	"2-Jan-2006",
	"01-02-06",
	"1/2/06",
	"1/2/2006",
	"2006-01-02",
}

// Date parses a date cell. Cells arrive either as a formatted date string or
// as a raw Excel serial number, depending on the cell style.
func (g *Grid) Date(row, col int) (time.Time, error) {
	v := g.Cell(row, col)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty date cell at row %d col %d", row, col)
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, g.loc); err == nil {
			return t, nil
		}
	}

	// Excel serial date: days since 1899-12-30.
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, g.loc)
		return epoch.AddDate(0, 0, int(serial)), nil
	}

	return time.Time{}, fmt.Errorf("unparseable date cell %q at row %d col %d", v, row, col)
}
