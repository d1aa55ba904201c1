package stats

import (
	"math"

	"github.com/montanaflynn/stats"
)

// SafeRange returns slider bounds for a column that never collapse to a
// degenerate interval. An empty column yields (0, 1); a constant column is
// widened by a small epsilon around the single value.
func SafeRange(values []float64) (float64, float64) {
	clean := dropNaN(values)
	if len(clean) == 0 {
		return 0, 1
	}

	min, _ := stats.Min(clean)
	max, _ := stats.Max(clean)
	if min == max {
		eps := 1.0
		if min != 0 {
			eps = math.Abs(min) * 0.01
		}
		return min - eps, max + eps
	}
	return min, max
}
