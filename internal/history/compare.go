package history

import "fmt"

// ColumnDiff is the change of one timing column between two batches.
type ColumnDiff struct {
	Column      string
	BaseMean    float64
	TargetMean  float64
	DiffPercent float64
}

// Comparison is the column-by-column verdict of comparing two batches
// against a regression threshold (a percentage).
type Comparison struct {
	Base      Batch
	Target    Batch
	Threshold float64
	Columns   []ColumnDiff
}

// Compare computes percent changes of the generate and copy means between
// base and target. A positive diff means the target got slower.
func Compare(base, target Batch, threshold float64) Comparison {
	c := Comparison{Base: base, Target: target, Threshold: threshold}
	c.Columns = []ColumnDiff{
		diffColumn("generate", base.Generate.Mean, target.Generate.Mean),
		diffColumn("copy", base.Copy.Mean, target.Copy.Mean),
	}
	return c
}

func diffColumn(name string, base, target float64) ColumnDiff {
	d := ColumnDiff{Column: name, BaseMean: base, TargetMean: target}
	if base > 0 {
		d.DiffPercent = (target - base) / base * 100
	}
	return d
}

// Regressed reports whether any column slowed down beyond the threshold.
func (c Comparison) Regressed() bool {
	for _, col := range c.Columns {
		if col.DiffPercent > c.Threshold {
			return true
		}
	}
	return false
}

func (d ColumnDiff) String() string {
	return fmt.Sprintf("%s: %.3f ms -> %.3f ms (%+.2f%%)",
		d.Column, d.BaseMean, d.TargetMean, d.DiffPercent)
}
