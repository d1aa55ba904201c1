package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"demodash/internal/errors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demog.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp CSV: %v", err)
	}
	return path
}

func TestReadTable_CSV(t *testing.T) {
	path := writeTempCSV(t, " region , life_expectancy_total \nGlobal, 73.3 \nJapan,84.8\n")

	table, err := NewDataReader(path).ReadTable()
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if len(table.Headers) != 2 || table.Headers[0] != "region" {
		t.Errorf("Expected trimmed headers, got %v", table.Headers)
	}
	if table.RowCount() != 2 {
		t.Errorf("Expected 2 rows, got %d", table.RowCount())
	}
	if table.Rows[0]["life_expectancy_total"] != "73.3" {
		t.Errorf("Expected trimmed cell 73.3, got %q", table.Rows[0]["life_expectancy_total"])
	}
}

func TestReadTable_ShortRowsPadded(t *testing.T) {
	path := writeTempCSV(t, "region,life_expectancy_total,gdp\nGlobal,73.3\n")

	table, err := NewDataReader(path).ReadTable()
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if got := table.Rows[0]["gdp"]; got != "" {
		t.Errorf("Expected padded empty cell, got %q", got)
	}
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "nope.csv")).ReadTable()
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if errors.GetCode(err) != errors.CodeDataMissing {
		t.Errorf("Expected code %s, got %s", errors.CodeDataMissing, errors.GetCode(err))
	}
}

func TestReadTable_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "region,life_expectancy_total\n")

	_, err := NewDataReader(path).ReadTable()
	if err == nil {
		t.Fatal("Expected error for header-only file")
	}
	if errors.GetCode(err) != errors.CodeEmptyData {
		t.Errorf("Expected code %s, got %s", errors.CodeEmptyData, errors.GetCode(err))
	}
}
