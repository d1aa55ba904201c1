package dataset

import (
	"math"
	"reflect"
	"testing"
)

func sampleTable() *Table {
	return &Table{
		Headers: []string{"region", "life_expectancy_total", "gdp_per_capita", "notes"},
		Rows: []Row{
			{"region": "Global", "life_expectancy_total": "73.3", "gdp_per_capita": "12263.0", "notes": "aggregate"},
			{"region": "Japan", "life_expectancy_total": "84.8", "gdp_per_capita": "39285.2", "notes": ""},
			{"region": "Nigeria", "life_expectancy_total": "54.7", "gdp_per_capita": "", "notes": "gap"},
		},
	}
}

func TestNumericColumns(t *testing.T) {
	table := sampleTable()

	numeric := table.NumericColumns()
	expected := []string{"life_expectancy_total", "gdp_per_capita"}
	if !reflect.DeepEqual(numeric, expected) {
		t.Errorf("Expected numeric columns %v, got %v", expected, numeric)
	}
}

func TestNumericColumns_AllBlankIsNotNumeric(t *testing.T) {
	table := &Table{
		Headers: []string{"empty"},
		Rows:    []Row{{"empty": ""}, {"empty": ""}},
	}
	if numeric := table.NumericColumns(); len(numeric) != 0 {
		t.Errorf("Expected no numeric columns, got %v", numeric)
	}
}

func TestColumn_BlankBecomesNaN(t *testing.T) {
	table := sampleTable()

	values := table.Column("gdp_per_capita")
	if len(values) != 3 {
		t.Fatalf("Expected 3 values, got %d", len(values))
	}
	if values[0] != 12263.0 {
		t.Errorf("Expected 12263.0, got %f", values[0])
	}
	if !math.IsNaN(values[2]) {
		t.Errorf("Expected NaN for blank cell, got %f", values[2])
	}
}

func TestRegions_SortedUnique(t *testing.T) {
	table := sampleTable()
	table.Rows = append(table.Rows, Row{"region": "Japan", "life_expectancy_total": "84.8"})

	regions := table.Regions()
	expected := []string{"Global", "Japan", "Nigeria"}
	if !reflect.DeepEqual(regions, expected) {
		t.Errorf("Expected regions %v, got %v", expected, regions)
	}
}

func TestRename(t *testing.T) {
	table := &Table{
		Headers: []string{"Entity", "value"},
		Rows:    []Row{{"Entity": "Spain", "value": "83.3"}},
	}

	table.Rename("Entity", "region")
	if !table.HasColumn("region") || table.HasColumn("Entity") {
		t.Errorf("Expected Entity renamed to region, headers: %v", table.Headers)
	}
	if table.Rows[0]["region"] != "Spain" {
		t.Errorf("Expected row value carried over, got %q", table.Rows[0]["region"])
	}

	// Renaming a missing column must not touch anything
	table.Rename("missing", "other")
	if len(table.Headers) != 2 {
		t.Errorf("Expected headers unchanged, got %v", table.Headers)
	}
}

func TestSortedByColumnDescAndHead(t *testing.T) {
	table := sampleTable()

	top := table.SortedByColumnDesc(ColumnLifeExpectancy).Head(2)
	if top.RowCount() != 2 {
		t.Fatalf("Expected 2 rows, got %d", top.RowCount())
	}
	if top.Rows[0]["region"] != "Japan" || top.Rows[1]["region"] != "Global" {
		t.Errorf("Expected Japan then Global, got %s then %s", top.Rows[0]["region"], top.Rows[1]["region"])
	}

	// Source order must be untouched
	if table.Rows[0]["region"] != "Global" {
		t.Errorf("Expected source table unchanged, first row is %s", table.Rows[0]["region"])
	}
}

func TestSortedByColumnDesc_UnparseableLast(t *testing.T) {
	table := &Table{
		Headers: []string{"region", "life_expectancy_total"},
		Rows: []Row{
			{"region": "A", "life_expectancy_total": ""},
			{"region": "B", "life_expectancy_total": "70"},
		},
	}
	sorted := table.SortedByColumnDesc(ColumnLifeExpectancy)
	if sorted.Rows[0]["region"] != "B" {
		t.Errorf("Expected parseable row first, got %s", sorted.Rows[0]["region"])
	}
}
