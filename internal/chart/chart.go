// Package chart renders benchmark history as a standalone HTML page.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"phspbench/internal/history"
)

// Render writes an HTML bar chart of the generate/copy means of the given
// batches, oldest first.
func Render(w io.Writer, batches []history.Batch) error {
	if len(batches) == 0 {
		return fmt.Errorf("no batches to chart")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Phase timings",
			Subtitle: "Mean per batch, milliseconds",
		}),
		charts.WithToolboxOpts(opts.Toolbox{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, 0, len(batches))
	generate := make([]opts.BarData, 0, len(batches))
	cp := make([]opts.BarData, 0, len(batches))
	for _, b := range batches {
		label := b.Timestamp.Format("2006-01-02 15:04")
		if b.Label != "" {
			label = b.Label
		}
		labels = append(labels, label)
		generate = append(generate, opts.BarData{Value: b.Generate.Mean})
		cp = append(cp, opts.BarData{Value: b.Copy.Mean})
	}

	bar.SetXAxis(labels).
		AddSeries("generate ms", generate).
		AddSeries("copy ms", cp)

	return bar.Render(w)
}
