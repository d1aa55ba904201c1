package stats

import (
	"math"
	"testing"

	"demodash/internal/errors"
)

func TestSummarize_KnownValues(t *testing.T) {
	values := []float64{70, 75, 80, 85}

	summary, err := Summarize(values)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.Count != 4 {
		t.Errorf("Expected count 4, got %d", summary.Count)
	}
	if summary.Mean != 77.5 {
		t.Errorf("Expected mean 77.5, got %f", summary.Mean)
	}
	if summary.Min != 70 {
		t.Errorf("Expected min 70, got %f", summary.Min)
	}
	if summary.Max != 85 {
		t.Errorf("Expected max 85, got %f", summary.Max)
	}
	if summary.Median != 77.5 {
		t.Errorf("Expected median 77.5, got %f", summary.Median)
	}
}

func TestSummarize_ExcludesNaN(t *testing.T) {
	values := []float64{70, math.NaN(), 80}

	summary, err := Summarize(values)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary.Count != 2 {
		t.Errorf("Expected NaN excluded from count, got %d", summary.Count)
	}
	if summary.Mean != 75 {
		t.Errorf("Expected mean 75, got %f", summary.Mean)
	}
}

func TestSummarize_EmptyIsError(t *testing.T) {
	for _, values := range [][]float64{nil, {}, {math.NaN(), math.NaN()}} {
		_, err := Summarize(values)
		if err == nil {
			t.Fatalf("Expected error for %v", values)
		}
		if errors.GetCode(err) != errors.CodeEmptyData {
			t.Errorf("Expected code %s, got %s", errors.CodeEmptyData, errors.GetCode(err))
		}
	}
}
