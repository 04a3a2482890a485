package main

import (
	"fmt"
	"os"

	"phspbench/internal/chart"
	"phspbench/internal/history"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var chartOut string

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render saved batches as an HTML bar chart",
	RunE:  executeChartCmd,
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVar(&chartOut, "out", "bench.html", "Output HTML file")
}

func executeChartCmd(cmd *cobra.Command, args []string) error {
	store, err := newStoreFunc(history.StoreConfig{
		Backend: viper.GetString("history.backend"),
		DSN:     viper.GetString("history.dsn"),
	})
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	batches, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	f, err := os.Create(chartOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", chartOut, err)
	}
	defer f.Close()

	if err := chart.Render(f, batches); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d batches)\n", chartOut, len(batches))
	return nil
}
