package stats

import (
	"math"

	"demodash/internal/errors"

	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics for one numeric column
type Summary struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	Median float64
	StdDev float64
}

// Summarize computes descriptive statistics over a column. NaN entries are
// excluded before computation; a column with no usable values is an error.
func Summarize(values []float64) (*Summary, error) {
	clean := dropNaN(values)
	if len(clean) == 0 {
		return nil, errors.EmptyData("no numeric values to summarize")
	}

	mean, _ := stats.Mean(clean)
	min, _ := stats.Min(clean)
	max, _ := stats.Max(clean)
	median, _ := stats.Median(clean)
	stdDev, _ := stats.StandardDeviation(clean)

	return &Summary{
		Count:  len(clean),
		Mean:   mean,
		Min:    min,
		Max:    max,
		Median: median,
		StdDev: stdDev,
	}, nil
}

func dropNaN(values []float64) []float64 {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	return clean
}
