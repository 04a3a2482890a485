// Package stats reduces measurement series to summary statistics.
package stats

import (
	"errors"
	"math"

	"phspbench/internal/harness"
)

// ErrEmptySeries is returned when statistics are requested over zero trials.
var ErrEmptySeries = errors.New("cannot summarize an empty series")

// Summary holds the aggregate statistics of one timing column.
type Summary struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Column computes the arithmetic mean and population standard deviation
// (divisor N, not N-1) of one column of values.
func Column(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptySeries
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))

	return Summary{Mean: mean, Std: math.Sqrt(variance)}, nil
}

// Summarize reduces a measurement series to one summary per timing column.
func Summarize(series harness.Series) (generate, cp Summary, err error) {
	generate, err = Column(series.Generates())
	if err != nil {
		return Summary{}, Summary{}, err
	}
	cp, err = Column(series.Copies())
	if err != nil {
		return Summary{}, Summary{}, err
	}
	return generate, cp, nil
}
