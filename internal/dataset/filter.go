package dataset

import "strings"

// RangeFilter is an inclusive numeric bound pair applied to one column
type RangeFilter struct {
	Column string
	Min    float64
	Max    float64
}

// Filter narrows a table by region membership and numeric range predicates.
// All predicates must hold for a row to pass. An empty region selection
// means no region filter is applied.
type Filter struct {
	Regions []string
	Ranges  []RangeFilter
}

// Apply returns a new table containing only the rows that satisfy every
// predicate. The source table is never mutated and rows keep all columns.
func (f Filter) Apply(t *Table) *Table {
	regionSet := make(map[string]bool, len(f.Regions))
	for _, r := range f.Regions {
		regionSet[r] = true
	}

	filtered := &Table{
		Headers: append([]string(nil), t.Headers...),
		Rows:    make([]Row, 0, len(t.Rows)),
	}

	for _, row := range t.Rows {
		if len(regionSet) > 0 && !regionSet[strings.TrimSpace(row[ColumnRegion])] {
			continue
		}
		if !passesRanges(row, f.Ranges) {
			continue
		}
		filtered.Rows = append(filtered.Rows, row)
	}

	return filtered
}

// passesRanges checks every range predicate. A cell that does not parse as a
// number cannot satisfy a range bound.
func passesRanges(row Row, ranges []RangeFilter) bool {
	for _, r := range ranges {
		v, ok := ParseCell(row[r.Column])
		if !ok {
			return false
		}
		if v < r.Min || v > r.Max {
			return false
		}
	}
	return true
}
