package dataset

import (
	"strings"
	"testing"

	"demodash/internal/errors"
)

func TestNormalize_ResolvesAliases(t *testing.T) {
	table := &Table{
		Headers: []string{"Entity", "Life expectancy", "gdp_per_capita"},
		Rows: []Row{
			{"Entity": "Spain", "Life expectancy": "83.3", "gdp_per_capita": "27057.2"},
		},
	}

	Normalize(table)

	if !table.HasColumn(ColumnRegion) {
		t.Errorf("Expected Entity resolved to %s, headers: %v", ColumnRegion, table.Headers)
	}
	if !table.HasColumn(ColumnLifeExpectancy) {
		t.Errorf("Expected Life expectancy resolved to %s, headers: %v", ColumnLifeExpectancy, table.Headers)
	}
	if err := Validate(table); err != nil {
		t.Errorf("Expected normalized table to validate, got %v", err)
	}
}

func TestNormalize_CanonicalWins(t *testing.T) {
	table := &Table{
		Headers: []string{"region", "Region", "life_expectancy_total"},
		Rows: []Row{
			{"region": "Spain", "Region": "ignored", "life_expectancy_total": "83.3"},
		},
	}

	Normalize(table)

	if table.Rows[0][ColumnRegion] != "Spain" {
		t.Errorf("Expected canonical column untouched, got %q", table.Rows[0][ColumnRegion])
	}
}

func TestValidate_MissingColumnsListsActual(t *testing.T) {
	table := &Table{
		Headers: []string{"country_name", "years_lived"},
		Rows:    []Row{{"country_name": "Spain", "years_lived": "83.3"}},
	}

	Normalize(table)
	err := Validate(table)
	if err == nil {
		t.Fatal("Expected validation failure")
	}
	if errors.GetCode(err) != errors.CodeColumnMissing {
		t.Errorf("Expected code %s, got %s", errors.CodeColumnMissing, errors.GetCode(err))
	}
	msg := err.Error()
	for _, want := range []string{ColumnRegion, ColumnLifeExpectancy, "country_name", "years_lived"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected message to mention %q, got %q", want, msg)
		}
	}
}
