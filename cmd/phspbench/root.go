package main

import (
	"fmt"
	"os"
	"strings"

	"phspbench/internal/config"
	"phspbench/internal/telemetry"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "phspbench",
	Short: "Benchmark harness for phase-space generator executables",
	Long: `phspbench repeatedly runs an executable that reports phase timings
on stdout as "Time = <number> ms" lines, extracts the generate and copy
times of each run, and reports the mean and population standard deviation
of both. Batches can be saved to a history store, compared for
regressions, charted, and announced to Slack.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./phspbench.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().Int("metrics-port", 0, "Expose Prometheus metrics on this port (0 = disabled)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("metrics_port", rootCmd.PersistentFlags().Lookup("metrics-port"))
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	// .env is optional; ignore when missing.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("phspbench")
	}

	viper.SetEnvPrefix("PHSPBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("trials", 10)
	viper.SetDefault("sweeps", 1)
	viper.SetDefault("timeout", 0)
	viper.SetDefault("threshold", 10.0)
	viper.SetDefault("history.backend", "sqlite")
	viper.SetDefault("history.dsn", "")
	viper.SetDefault("metrics_port", 0)
	viper.SetDefault("verbose", false)
	viper.SetDefault("notifications.slack.channel", "#benchmarks")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"))

	// Scrape endpoint for long overnight batches; disabled by default.
	if port := viper.GetInt("metrics_port"); port > 0 {
		go func() {
			if err := telemetry.StartMetricsServer(port); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to start metrics server: %v\n", err)
			}
		}()
	}
}
