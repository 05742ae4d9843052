package source

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alcortesm/datahub/app/indicator"
)

// DefaultSheet is the sheet of the data hub workbook holding the records.
const DefaultSheet = "Database"

// ErrMissingColumn is returned when the header of a sheet lacks one of
// the columns every record needs.
var ErrMissingColumn = errors.New("missing column")

// Column headers of the data hub workbook.
const (
	YearColumn       = "Year"
	IndicatorColumn  = "Indicator"
	ValueColumn      = "Indicator Value"
	UnitColumn       = "Indicator Unit"
	SeriesColumn     = "Series Name"
	SectorColumn     = "Sector"
	SubSector1Column = "Sub-Sector (1)"
	SubSector2Column = "Sub-Sector (2)"
	ProvinceColumn   = "Province"
	TagColumn        = "Tag"
)

var required = []string{YearColumn, IndicatorColumn, ValueColumn}

// Parse reads the records of a sheet whose first row holds the column
// headers. Columns are found by name, in any order; only the year,
// indicator and value columns are required.
//
// Rows without an indicator name, or with a year or a value that are
// not numbers, are skipped and counted.
func Parse(f *excelize.File, sheet string) (records []indicator.Record, skipped int, err error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, 0, fmt.Errorf("reading sheet %q: %v", sheet, err)
	}

	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("sheet %q has no header", sheet)
	}

	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}

	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, 0, fmt.Errorf("sheet %q: %w %q",
				sheet, ErrMissingColumn, name)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records = []indicator.Record{}

	for _, row := range rows[1:] {
		year, okYear := parseYear(cell(row, YearColumn))
		value, okValue := parseValue(cell(row, ValueColumn))
		name := cell(row, IndicatorColumn)

		if !okYear || !okValue || name == "" {
			skipped++
			continue
		}

		records = append(records, indicator.Record{
			Year:       year,
			Indicator:  name,
			Value:      value,
			Unit:       cell(row, UnitColumn),
			SeriesName: cell(row, SeriesColumn),
			Sector:     cell(row, SectorColumn),
			SubSector1: cell(row, SubSector1Column),
			SubSector2: cell(row, SubSector2Column),
			Province:   cell(row, ProvinceColumn),
			Tag:        cell(row, TagColumn),
		})
	}

	return records, skipped, nil
}

// parseYear accepts whole numbers, also when written as floats.
func parseYear(s string) (int, bool) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}

	return int(f), true
}

// parseValue accepts finite numbers only, the rest cannot be charted.
func parseValue(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
