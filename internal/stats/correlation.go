package stats

import (
	"math"

	"demodash/internal/dataset"
	"demodash/internal/errors"

	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix holds pairwise Pearson coefficients for a column set.
// Values is a square matrix aligned with Columns; entries that could not be
// computed (zero variance, fewer than two complete pairs) are NaN.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// Correlate computes the pairwise Pearson correlation matrix over the named
// numeric columns, using pairwise-complete observations: for each column
// pair, rows where either value is missing are dropped.
func Correlate(t *dataset.Table, columns []string) (*CorrelationMatrix, error) {
	if len(columns) < 2 {
		return nil, errors.InvalidInput("correlation requires at least two numeric columns")
	}

	extracted := make([][]float64, len(columns))
	for i, col := range columns {
		if !t.HasColumn(col) {
			return nil, errors.NotFound("column " + col)
		}
		extracted[i] = t.Column(col)
	}

	n := len(columns)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pairwiseCorrelation(extracted[i], extracted[j])
			values[i][j] = r
			values[j][i] = r
		}
	}

	return &CorrelationMatrix{Columns: columns, Values: values}, nil
}

// pairwiseCorrelation drops incomplete pairs, then delegates to gonum
func pairwiseCorrelation(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for k := range x {
		if math.IsNaN(x[k]) || math.IsNaN(y[k]) {
			continue
		}
		xs = append(xs, x[k])
		ys = append(ys, y[k])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
