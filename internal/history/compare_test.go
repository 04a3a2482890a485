package history

import (
	"testing"

	"phspbench/internal/stats"

	"github.com/stretchr/testify/assert"
)

func batchWithMeans(gen, cp float64) Batch {
	return Batch{
		Generate: stats.Summary{Mean: gen},
		Copy:     stats.Summary{Mean: cp},
	}
}

func TestCompare_Regression(t *testing.T) {
	base := batchWithMeans(100, 10)
	target := batchWithMeans(125, 10) // generate 25% slower

	c := Compare(base, target, 10.0)

	assert.True(t, c.Regressed())
	assert.Equal(t, "generate", c.Columns[0].Column)
	assert.InDelta(t, 25.0, c.Columns[0].DiffPercent, 0.001)
	assert.InDelta(t, 0.0, c.Columns[1].DiffPercent, 0.001)
}

func TestCompare_Improvement(t *testing.T) {
	base := batchWithMeans(100, 10)
	target := batchWithMeans(80, 8) // both 20% faster

	c := Compare(base, target, 10.0)

	assert.False(t, c.Regressed())
	assert.InDelta(t, -20.0, c.Columns[0].DiffPercent, 0.001)
	assert.InDelta(t, -20.0, c.Columns[1].DiffPercent, 0.001)
}

func TestCompare_WithinThreshold(t *testing.T) {
	base := batchWithMeans(100, 10)
	target := batchWithMeans(105, 10.5) // 5% slower, threshold 10%

	c := Compare(base, target, 10.0)
	assert.False(t, c.Regressed())
}

func TestCompare_ZeroBaseMean(t *testing.T) {
	base := batchWithMeans(0, 0)
	target := batchWithMeans(10, 10)

	c := Compare(base, target, 10.0)
	// No percent change is defined against a zero base.
	assert.False(t, c.Regressed())
	assert.Equal(t, 0.0, c.Columns[0].DiffPercent)
}

func TestColumnDiffString(t *testing.T) {
	d := ColumnDiff{Column: "copy", BaseMean: 10, TargetMean: 12, DiffPercent: 20}
	assert.Equal(t, "copy: 10.000 ms -> 12.000 ms (+20.00%)", d.String())
}
