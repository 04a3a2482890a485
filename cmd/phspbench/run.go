package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"phspbench/internal/harness"
	"phspbench/internal/history"
	"phspbench/internal/notify"
	"phspbench/internal/stats"
	"phspbench/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	runSave   bool
	runLabel  string
	runNotify bool
)

// Factory seams for tests.
var (
	newRunnerFunc = func(path string, echo io.Writer, timeout time.Duration) harness.Runner {
		return harness.NewExecRunner(path, echo, timeout)
	}
	newStoreFunc = func(cfg history.StoreConfig) (history.Store, error) {
		return history.NewStore(cfg)
	}
	newNotifierFunc = func() (notify.Notifier, error) {
		return notify.NewSlackNotifier()
	}
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a benchmark batch and report timing statistics",
	Long: `Runs the executable under test once per trial, teeing its output to the
console while capturing it. Each run must print exactly two
"Time = <number> ms" lines: the generate time and the copy time, in that
order. After all trials the mean and population standard deviation of both
columns are reported.`,
	RunE: executeRunCmd,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("exe", "", "Path to the executable under test (required)")
	runCmd.Flags().Int("trials", 10, "Number of trials per batch")
	runCmd.Flags().Int("sweeps", 1, "Number of batches to run back to back")
	runCmd.Flags().Duration("timeout", 0, "Per-trial timeout (0 = unlimited)")
	runCmd.Flags().BoolVar(&runSave, "save", false, "Save the batch to history")
	runCmd.Flags().StringVar(&runLabel, "label", "", "Label stored with the batch")
	runCmd.Flags().BoolVar(&runNotify, "notify", false, "Announce the outcome to Slack")

	viper.BindPFlag("exe", runCmd.Flags().Lookup("exe"))
	viper.BindPFlag("trials", runCmd.Flags().Lookup("trials"))
	viper.BindPFlag("sweeps", runCmd.Flags().Lookup("sweeps"))
	viper.BindPFlag("timeout", runCmd.Flags().Lookup("timeout"))
}

func executeRunCmd(cmd *cobra.Command, args []string) error {
	exe := viper.GetString("exe")
	if exe == "" {
		return fmt.Errorf("no executable given; use --exe or set 'exe' in the config")
	}

	trials := viper.GetInt("trials")
	sweeps := viper.GetInt("sweeps")
	timeout := viper.GetDuration("timeout")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var notifier notify.Notifier
	if runNotify {
		var err error
		notifier, err = newNotifierFunc()
		if err != nil {
			return fmt.Errorf("--notify requested but notifier unavailable: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	runner := newRunnerFunc(exe, out, timeout)

	var store history.Store
	if runSave {
		var err error
		store, err = newStoreFunc(history.StoreConfig{
			Backend: viper.GetString("history.backend"),
			DSN:     viper.GetString("history.dsn"),
		})
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		defer store.Close()
	}

	for sweep := 0; sweep < sweeps; sweep++ {
		series, err := harness.Batch(ctx, runner, trials)
		if err != nil {
			err = fmt.Errorf("sweep %d/%d: %w", sweep+1, sweeps, err)
			notifyOutcome(ctx, notifier, fmt.Sprintf("phspbench run of %s failed: %v", exe, err))
			return err
		}

		generate, cp, err := stats.Summarize(series)
		if err != nil {
			err = fmt.Errorf("sweep %d/%d: %w", sweep+1, sweeps, err)
			notifyOutcome(ctx, notifier, fmt.Sprintf("phspbench run of %s failed: %v", exe, err))
			return err
		}
		telemetry.RecordBatchMeans(generate.Mean, cp.Mean)

		fmt.Fprintf(out, "%s %g %g\n", summaryLabelStyle.Render("Generate:"), generate.Mean, generate.Std)
		fmt.Fprintf(out, "%s %g %g\n", summaryLabelStyle.Render("Copy:"), cp.Mean, cp.Std)

		if runSave {
			id, err := store.Save(history.Batch{
				Timestamp:  time.Now(),
				Label:      runLabel,
				Executable: exe,
				Trials:     series,
				Generate:   generate,
				Copy:       cp,
			})
			if err != nil {
				return fmt.Errorf("failed to save batch: %w", err)
			}
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Saved batch %d", id)))
		}

		notifyOutcome(ctx, notifier, fmt.Sprintf(
			"phspbench %s: generate %.3f±%.3f ms, copy %.3f±%.3f ms (%d trials)",
			exe, generate.Mean, generate.Std, cp.Mean, cp.Std, trials))
	}

	return nil
}

func notifyOutcome(ctx context.Context, notifier notify.Notifier, message string) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, message); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Warning: notification failed: %v\n", err)
	}
}
