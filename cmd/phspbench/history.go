package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"phspbench/internal/history"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved benchmark batches",
	RunE:  executeHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Emit raw batch records as JSON")
}

func executeHistoryCmd(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(batches)
	}

	if len(batches) == 0 {
		fmt.Fprintln(out, "No saved batches.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tLABEL\tEXECUTABLE\tTRIALS\tGENERATE MS\tCOPY MS")
	for _, b := range batches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%.3f ± %.3f\t%.3f ± %.3f\n",
			b.ID, b.Timestamp.Format("2006-01-02 15:04:05"), b.Label, b.Executable,
			len(b.Trials), b.Generate.Mean, b.Generate.Std, b.Copy.Mean, b.Copy.Std)
	}
	return w.Flush()
}
