package stats

import (
	"math"
	"testing"
)

func TestSafeRange_NormalBoundsPassThrough(t *testing.T) {
	min, max := SafeRange([]float64{54.7, 73.3, 84.8})
	if min != 54.7 || max != 84.8 {
		t.Errorf("Expected (54.7, 84.8), got (%f, %f)", min, max)
	}
}

func TestSafeRange_ConstantColumnWidened(t *testing.T) {
	min, max := SafeRange([]float64{50, 50, 50})
	if min >= max {
		t.Fatalf("Expected non-degenerate interval, got (%f, %f)", min, max)
	}
	if min != 49.5 || max != 50.5 {
		t.Errorf("Expected 1%% widening to (49.5, 50.5), got (%f, %f)", min, max)
	}
}

func TestSafeRange_ConstantZeroUsesUnitEpsilon(t *testing.T) {
	min, max := SafeRange([]float64{0, 0})
	if min != -1 || max != 1 {
		t.Errorf("Expected (-1, 1), got (%f, %f)", min, max)
	}
}

func TestSafeRange_EmptyDefaultsToUnitInterval(t *testing.T) {
	for _, values := range [][]float64{nil, {}, {math.NaN()}} {
		min, max := SafeRange(values)
		if min != 0 || max != 1 {
			t.Errorf("Expected (0, 1) for %v, got (%f, %f)", values, min, max)
		}
	}
}

func TestSafeRange_IgnoresNaN(t *testing.T) {
	min, max := SafeRange([]float64{math.NaN(), 60, 70})
	if min != 60 || max != 70 {
		t.Errorf("Expected (60, 70), got (%f, %f)", min, max)
	}
}
