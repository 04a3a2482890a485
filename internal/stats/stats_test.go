package stats

import (
	"testing"

	"phspbench/internal/harness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn_ConstantValues(t *testing.T) {
	s, err := Column([]float64{7.5, 7.5, 7.5, 7.5})
	require.NoError(t, err)
	assert.Equal(t, 7.5, s.Mean)
	assert.Equal(t, 0.0, s.Std)
}

func TestColumn_PopulationStd(t *testing.T) {
	// Population std uses divisor N: values 10 and 12 have std 1, not sqrt(2).
	s, err := Column([]float64{10, 12})
	require.NoError(t, err)
	assert.Equal(t, 11.0, s.Mean)
	assert.Equal(t, 1.0, s.Std)
}

func TestColumn_Empty(t *testing.T) {
	_, err := Column(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestSummarize(t *testing.T) {
	series := harness.Series{
		{Generate: 10.0, Copy: 2.0},
		{Generate: 12.0, Copy: 4.0},
	}

	generate, cp, err := Summarize(series)
	require.NoError(t, err)
	assert.Equal(t, 11.0, generate.Mean)
	assert.Equal(t, 1.0, generate.Std)
	assert.Equal(t, 3.0, cp.Mean)
	assert.Equal(t, 1.0, cp.Std)
}

func TestSummarize_Empty(t *testing.T) {
	_, _, err := Summarize(harness.Series{})
	assert.ErrorIs(t, err, ErrEmptySeries)
}
