package dataset

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canonical column names the dashboard requires after alias resolution.
const (
	ColumnRegion         = "region"
	ColumnLifeExpectancy = "life_expectancy_total"
)

// Row represents a single record as column name to raw cell value
type Row map[string]string

// Table represents the complete in-memory demographic dataset
type Table struct {
	Headers []string
	Rows    []Row
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// HasColumn reports whether a column exists in the header set
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Rename renames a column in headers and in every row. Renaming a missing
// column is a no-op.
func (t *Table) Rename(from, to string) {
	found := false
	for i, h := range t.Headers {
		if h == from {
			t.Headers[i] = to
			found = true
			break
		}
	}
	if !found {
		return
	}
	for _, row := range t.Rows {
		if v, ok := row[from]; ok {
			row[to] = v
			delete(row, from)
		}
	}
}

// Regions returns the sorted unique non-empty values of the region column
func (t *Table) Regions() []string {
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		if v := strings.TrimSpace(row[ColumnRegion]); v != "" {
			seen[v] = true
		}
	}
	regions := make([]string, 0, len(seen))
	for r := range seen {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// NumericColumns returns the headers, in header order, whose every non-empty
// cell parses as a number. A column with no parseable value at all does not
// count as numeric.
func (t *Table) NumericColumns() []string {
	var numeric []string
	for _, h := range t.Headers {
		parseable := 0
		ok := true
		for _, row := range t.Rows {
			cell := strings.TrimSpace(row[h])
			if cell == "" {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				ok = false
				break
			}
			parseable++
		}
		if ok && parseable > 0 {
			numeric = append(numeric, h)
		}
	}
	return numeric
}

// Column extracts a column as float64 values aligned with t.Rows. Blank or
// unparseable cells become NaN so callers can drop them pairwise.
func (t *Table) Column(name string) []float64 {
	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		v, ok := ParseCell(row[name])
		if !ok {
			values[i] = math.NaN()
			continue
		}
		values[i] = v
	}
	return values
}

// ColumnValues extracts the parseable values of a column, dropping blanks
func (t *Table) ColumnValues(name string) []float64 {
	values := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if v, ok := ParseCell(row[name]); ok {
			values = append(values, v)
		}
	}
	return values
}

// SortedByColumnDesc returns a new table with rows ordered by a numeric
// column, highest first. Rows whose cell does not parse sort last. The
// receiver is never mutated.
func (t *Table) SortedByColumnDesc(name string) *Table {
	sorted := &Table{
		Headers: append([]string(nil), t.Headers...),
		Rows:    append([]Row(nil), t.Rows...),
	}
	sort.SliceStable(sorted.Rows, func(i, j int) bool {
		a, aok := ParseCell(sorted.Rows[i][name])
		b, bok := ParseCell(sorted.Rows[j][name])
		if aok != bok {
			return aok
		}
		return a > b
	})
	return sorted
}

// Head returns a new table containing at most n leading rows
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &Table{
		Headers: append([]string(nil), t.Headers...),
		Rows:    append([]Row(nil), t.Rows[:n]...),
	}
}

// ParseCell parses a raw cell into a float64, tolerating surrounding
// whitespace. The boolean reports whether the cell held a usable number.
func ParseCell(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
