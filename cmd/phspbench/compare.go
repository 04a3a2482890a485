package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"phspbench/internal/history"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	compareBaseID   int64
	compareTargetID int64
	compareNotify   bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two saved batches and flag regressions",
	Long: `Compares the generate and copy means of two saved batches. By default
the two most recent batches are compared; --base and --target select
specific batch ids. Exits non-zero when a column slowed down by more than
the threshold percentage.`,
	RunE: executeCompareCmd,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Int64Var(&compareBaseID, "base", 0, "Base batch id (default: second most recent)")
	compareCmd.Flags().Int64Var(&compareTargetID, "target", 0, "Target batch id (default: most recent)")
	compareCmd.Flags().Float64("threshold", 10.0, "Regression threshold in percent")
	compareCmd.Flags().BoolVar(&compareNotify, "notify", false, "Post the verdict to Slack")

	viper.BindPFlag("threshold", compareCmd.Flags().Lookup("threshold"))
}

func executeCompareCmd(cmd *cobra.Command, args []string) error {
	store, err := newStoreFunc(history.StoreConfig{
		Backend: viper.GetString("history.backend"),
		DSN:     viper.GetString("history.dsn"),
	})
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	base, target, err := pickBatches(store)
	if err != nil {
		return err
	}

	threshold := viper.GetFloat64("threshold")
	comparison := history.Compare(*base, *target, threshold)

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "COLUMN\tBASE (#%d)\tTARGET (#%d)\tDIFF\tSTATUS\n", base.ID, target.ID)
	for _, col := range comparison.Columns {
		status := "ok"
		switch {
		case col.DiffPercent > threshold:
			status = regressionStyle.Render("REGRESSED")
		case col.DiffPercent < -threshold:
			status = improvementStyle.Render("improved")
		}
		fmt.Fprintf(w, "%s\t%.3f ms\t%.3f ms\t%+.2f%%\t%s\n",
			col.Column, col.BaseMean, col.TargetMean, col.DiffPercent, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if compareNotify {
		notifier, err := newNotifierFunc()
		if err != nil {
			return fmt.Errorf("--notify requested but notifier unavailable: %w", err)
		}
		verdict := "no regression"
		if comparison.Regressed() {
			verdict = "REGRESSION"
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		msg := fmt.Sprintf("phspbench compare #%d -> #%d: %s (%s, %s)",
			base.ID, target.ID, verdict, comparison.Columns[0], comparison.Columns[1])
		notifyOutcome(ctx, notifier, msg)
	}

	if comparison.Regressed() {
		return fmt.Errorf("regression detected beyond %.1f%% threshold", threshold)
	}
	return nil
}

// pickBatches resolves the pair to compare: explicit ids when given,
// otherwise the two most recent batches.
func pickBatches(store history.Store) (base, target *history.Batch, err error) {
	if compareBaseID != 0 || compareTargetID != 0 {
		if compareBaseID == 0 || compareTargetID == 0 {
			return nil, nil, fmt.Errorf("--base and --target must be given together")
		}
		if base, err = store.Get(compareBaseID); err != nil {
			return nil, nil, err
		}
		if base == nil {
			return nil, nil, fmt.Errorf("batch %d not found", compareBaseID)
		}
		if target, err = store.Get(compareTargetID); err != nil {
			return nil, nil, err
		}
		if target == nil {
			return nil, nil, fmt.Errorf("batch %d not found", compareTargetID)
		}
		return base, target, nil
	}

	latest, err := store.LoadLatest(2)
	if err != nil {
		return nil, nil, err
	}
	if len(latest) < 2 {
		return nil, nil, fmt.Errorf("need at least two saved batches to compare, have %d", len(latest))
	}
	return &latest[0], &latest[1], nil
}
